package httpapi

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	discordrouter "github.com/jose-valero/jukebox-bot/internal/adapters/discord"
	"github.com/jose-valero/jukebox-bot/internal/app/service"
	"github.com/jose-valero/jukebox-bot/internal/infra/storage"
)

const maxBody = 1 << 20

type Server struct {
	log        *slog.Logger
	mux        *http.ServeMux
	publicKey  ed25519.PublicKey // nil = sin endpoint de interactions
	dispatcher *service.Dispatcher
	journal    discordrouter.Journal
}

func New(log *slog.Logger, publicKey ed25519.PublicKey, dispatcher *service.Dispatcher, journal discordrouter.Journal) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{log: log, mux: http.NewServeMux(), publicKey: publicKey, dispatcher: dispatcher, journal: journal}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.publicKey != nil {
		s.mux.HandleFunc("POST /interactions", s.handleInteraction)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.mux.ServeHTTP(w, r) }

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// handleInteraction es el camino HTTP de Discord: misma lógica que el gateway,
// pero la respuesta viaja en el body en vez de por REST.
func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if !discordgo.VerifyInteraction(r, s.publicKey) {
		http.Error(w, "invalid request signature", http.StatusUnauthorized)
		return
	}

	var i discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
		http.Error(w, "bad interaction payload", http.StatusBadRequest)
		return
	}

	switch i.Type {
	case discordgo.InteractionPing:
		writeJSON(w, &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong})
	case discordgo.InteractionApplicationCommand:
		start := time.Now()
		inv := discordrouter.InvocationFrom(&i)
		s.log.Info("http cmd", slog.String("name", inv.Name), slog.String("by", inv.UserID), slog.String("guild", inv.GuildID))
		content := s.dispatcher.Dispatch(r.Context(), inv)
		err := writeJSON(w, discordrouter.MessageResponse(content))
		s.record(storage.InteractionRecord{
			InteractionID: inv.InteractionID,
			GuildID:       inv.GuildID,
			UserID:        inv.UserID,
			Command:       inv.Name,
			Reply:         content,
			Delivered:     err == nil,
			Error:         errString(err),
			Elapsed:       time.Since(start),
		})
	default:
		http.Error(w, "unsupported interaction type", http.StatusBadRequest)
	}
}

func (s *Server) record(rec storage.InteractionRecord) {
	if s.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.journal.Record(ctx, rec); err != nil {
		s.log.Error("journal interaction", slog.String("interaction", rec.InteractionID), slog.String("err", err.Error()))
	}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Start sirve hasta que ctx se cancele.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	s.log.Info("🌐 HTTP listening", slog.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
