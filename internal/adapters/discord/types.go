package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/jukebox-bot/internal/infra/storage"
)

// Client es la parte REST de *discordgo.Session que usa el router.
type Client interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Lo implementa internal/infra/storage.InteractionRepo
type Journal interface {
	Record(ctx context.Context, rec storage.InteractionRecord) error
}

// ReplyPolicy controla la entrega de la respuesta de cada interacción.
type ReplyPolicy struct {
	Timeout time.Duration
	Retries int
	Backoff time.Duration
}

type Options struct {
	Reply           ReplyPolicy
	MaxInflight     int64
	MentionCooldown time.Duration
}

func (o Options) withDefaults() Options {
	if o.Reply.Timeout <= 0 {
		o.Reply.Timeout = 2500 * time.Millisecond
	}
	if o.Reply.Retries < 0 {
		o.Reply.Retries = 0
	}
	if o.Reply.Backoff <= 0 {
		o.Reply.Backoff = 200 * time.Millisecond
	}
	if o.MaxInflight <= 0 {
		o.MaxInflight = 32
	}
	if o.MentionCooldown <= 0 {
		o.MentionCooldown = 3 * time.Second
	}
	return o
}
