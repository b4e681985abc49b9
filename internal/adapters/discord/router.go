package discord

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/semaphore"

	"github.com/jose-valero/jukebox-bot/internal/app/service"
	"github.com/jose-valero/jukebox-bot/internal/infra/storage"
)

type Router struct {
	s   *discordgo.Session
	api Client

	dispatcher *service.Dispatcher
	mention    *service.MentionService
	journal    Journal // opcional

	log      *slog.Logger
	opts     Options
	inflight *semaphore.Weighted
	mentions *userLimiter
	selfID   atomic.Value // string, se setea en el ready
}

func NewRouter(
	s *discordgo.Session,
	dispatcher *service.Dispatcher,
	mention *service.MentionService,
	journal Journal,
	log *slog.Logger,
	opts Options,
) *Router {
	r := newRouter(s, dispatcher, mention, journal, log, opts)
	r.s = s
	return r
}

func newRouter(api Client, dispatcher *service.Dispatcher, mention *service.MentionService, journal Journal, log *slog.Logger, opts Options) *Router {
	if log == nil {
		log = slog.Default()
	}
	opts = opts.withDefaults()
	return &Router{
		api:        api,
		dispatcher: dispatcher,
		mention:    mention,
		journal:    journal,
		log:        log,
		opts:       opts,
		inflight:   semaphore.NewWeighted(opts.MaxInflight),
		mentions:   newUserLimiter(opts.MentionCooldown),
	}
}

// Handlers suscribe los tres eventos que le importan al bot.
func (r *Router) Handlers() {
	r.s.AddHandler(r.onReady)
	r.s.AddHandler(r.onInteractionCreate)
	r.s.AddHandler(r.onMessageCreate)
}

func (r *Router) onReady(_ *discordgo.Session, ready *discordgo.Ready) {
	if ready.User != nil {
		r.selfID.Store(ready.User.ID)
		r.log.Info("connected", slog.String("user", ready.User.Username), slog.String("id", ready.User.ID))
	}
	r.publish(ready)
}

// publish registra el set completo en el PRIMER guild del ready y ping como global.
// Un solo guild, el que venga primero: es una restricción, no un descuido.
func (r *Router) publish(ready *discordgo.Ready) {
	appID := readyAppID(ready)
	if appID == "" {
		r.log.Error("ready without application id, skipping command publication")
		return
	}

	if len(ready.Guilds) == 0 || ready.Guilds[0] == nil {
		r.log.Warn("ready payload has no guilds, skipping guild commands")
	} else {
		guildID := ready.Guilds[0].ID
		cmds, err := r.api.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
		if err != nil {
			r.log.Error("publish guild commands", slog.String("guild", guildID), slog.String("err", err.Error()))
		} else {
			r.log.Info("guild slash commands registered", slog.String("guild", guildID), slog.Int("count", len(cmds)))
		}
	}

	cmd, err := r.api.ApplicationCommandCreate(appID, "", PingCommand())
	if err != nil {
		r.log.Error("publish global ping", slog.String("err", err.Error()))
		return
	}
	r.log.Info("global slash command registered", slog.String("name", cmd.Name), slog.String("id", cmd.ID))
}

func readyAppID(ready *discordgo.Ready) string {
	if ready.Application != nil && ready.Application.ID != "" {
		return ready.Application.ID
	}
	if ready.User != nil {
		return ready.User.ID
	}
	return ""
}

func (r *Router) onInteractionCreate(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	if ic.Interaction == nil || ic.Type != discordgo.InteractionApplicationCommand {
		return
	}

	// Discord acepta la respuesta inicial solo por ~3s desde que llega:
	// un único deadline cubre la espera del slot y la entrega.
	ctx, cancel := context.WithTimeout(context.Background(), r.opts.Reply.Timeout)
	defer cancel()
	if err := r.inflight.Acquire(ctx, 1); err != nil {
		r.log.Warn("too many interactions in flight, dropping", slog.String("interaction", ic.ID))
		return
	}
	defer r.inflight.Release(1)

	r.handleSlashCommand(ctx, ic.Interaction)
}

func (r *Router) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil {
		return
	}
	self, _ := r.selfID.Load().(string)
	r.handleMention(m.Message, self)
}

func (r *Router) handleMention(m *discordgo.Message, selfID string) {
	if m.Author == nil || m.Author.Bot || r.mention == nil {
		return
	}
	if !mentions(m, selfID) {
		return
	}
	if !r.mentions.Allow(m.Author.ID) {
		return
	}
	reply, ok := r.mention.Reply(m.Content)
	if !ok {
		return
	}
	if _, err := r.api.ChannelMessageSend(m.ChannelID, reply, discordgo.WithContext(context.Background())); err != nil {
		r.log.Error("mention reply", slog.String("channel", m.ChannelID), slog.String("err", err.Error()))
	}
}

func (r *Router) record(rec storage.InteractionRecord) {
	if r.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.journal.Record(ctx, rec); err != nil {
		r.log.Error("journal interaction", slog.String("interaction", rec.InteractionID), slog.String("err", err.Error()))
	}
}
