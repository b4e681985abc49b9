// cmd/bot/main.go
package main

import (
	"context"
	"crypto/ed25519"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/jukebox-bot/internal/adapters/discord"
	"github.com/jose-valero/jukebox-bot/internal/adapters/httpapi"
	"github.com/jose-valero/jukebox-bot/internal/app/service"
	"github.com/jose-valero/jukebox-bot/internal/domain"
	"github.com/jose-valero/jukebox-bot/internal/infra/config"
	"github.com/jose-valero/jukebox-bot/internal/infra/logging"
	"github.com/jose-valero/jukebox-bot/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// sin token no se abre nada
	cfg := config.Load()

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB (opcional)
	var (
		db           *sql.DB
		journal      discordrouter.Journal
		spins        service.SpinRecorder
		interactions *storage.InteractionRepo
	)
	if cfg.DatabaseURL != "" {
		var err error
		db, err = storage.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := storage.Migrate(ctx, db); err != nil {
			log.Fatal("migrate:", err)
		}
		interactions = storage.NewInteractionRepo(db)
		journal = interactions
		spins = storage.NewRouletteRepo(db)
		logger.Info("✅ DB lista y migrada")
	} else {
		logger.Warn("DATABASE_URL vacío: sin journal")
	}

	// Services
	seed := cfg.RouletteSeed
	if seed == 0 {
		var err error
		if seed, err = service.RandomSeed(); err != nil {
			log.Fatal(err)
		}
	}
	roulette := service.NewRouletteService(service.NewRandDrawer(seed), spins, logger)
	dispatcher := service.NewDispatcher(roulette, logger)
	mention := service.NewMentionService(nil)

	// Discord session
	s, err := discordrouter.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Fatal(err)
	}

	// Router: los handlers van antes del Open para no perder el ready
	r := discordrouter.NewRouter(s, dispatcher, mention, journal, logger, discordrouter.Options{
		Reply: discordrouter.ReplyPolicy{
			Timeout: cfg.ReplyTimeout,
			Retries: cfg.ReplyRetries,
			Backoff: cfg.ReplyBackoff,
		},
		MaxInflight:     cfg.MaxInflight,
		MentionCooldown: cfg.MentionCooldown,
	})
	r.Handlers()

	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	// HTTP: health + interactions si hay public key
	var pub ed25519.PublicKey
	if cfg.DiscordPublicKey != "" {
		pub, _ = config.PublicKey(cfg.DiscordPublicKey) // ya validada en Parse
	}
	web := httpapi.New(logger, pub, dispatcher, journal)
	go func() {
		if err := web.Start(ctx, cfg.HTTPAddr); err != nil {
			logger.Error("http server", slog.String("err", err.Error()))
		}
	}()

	// Pruner del journal
	if interactions != nil {
		go prune(ctx, logger, interactions, cfg.PruneInterval, cfg.JournalRetention)
	}

	<-ctx.Done()
	logger.Info("👋 shutting down")
}

func prune(ctx context.Context, logger *slog.Logger, repo *storage.InteractionRepo, every, retention time.Duration) {
	if every <= 0 || retention <= 0 {
		return
	}
	names := make([]string, 0, len(domain.KnownCommands()))
	for _, c := range domain.KnownCommands() {
		names = append(names, c.String())
	}

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			pctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			n, err := repo.Prune(pctx, names, retention)
			cancel()
			if err != nil {
				logger.Error("journal prune", slog.String("err", err.Error()))
				continue
			}
			if n > 0 {
				logger.Info("journal pruned", slog.Int64("rows", n))
			}
		}
	}
}
