// Lógica de InteractionApplicationCommand: resolver, despachar al service y responder.
package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/jukebox-bot/internal/infra/storage"
)

func (r *Router) handleSlashCommand(ctx context.Context, i *discordgo.Interaction) {
	start := time.Now()
	inv := InvocationFrom(i)
	r.log.Info("cmd", slog.String("name", inv.Name), slog.String("by", inv.UserID), slog.String("guild", inv.GuildID))
	defer step(r.log, "cmd."+inv.Name, slog.String("interaction", inv.InteractionID))()

	content := r.dispatcher.Dispatch(ctx, inv)

	err := r.respond(ctx, i, content)
	rec := storage.InteractionRecord{
		InteractionID: inv.InteractionID,
		GuildID:       inv.GuildID,
		UserID:        inv.UserID,
		Command:       inv.Name,
		Reply:         content,
		Delivered:     err == nil,
		Elapsed:       time.Since(start),
	}
	if err != nil {
		rec.Error = err.Error()
		// no reintentamos más ni tiramos el proceso: queda en el log
		r.log.Error("cannot respond to slash command",
			slog.String("name", inv.Name), slog.String("interaction", inv.InteractionID), slog.String("err", err.Error()))
	}
	r.record(rec)
}
