package discord

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/jukebox-bot/internal/app/service"
	"github.com/jose-valero/jukebox-bot/internal/infra/logging"
	"github.com/jose-valero/jukebox-bot/internal/infra/storage"
)

type bulkCall struct {
	appID, guildID string
	cmds           []*discordgo.ApplicationCommand
}

type createCall struct {
	appID, guildID string
	cmd            *discordgo.ApplicationCommand
}

type fakeClient struct {
	mu sync.Mutex

	respondErrs []error // se consumen en orden; nil = ok
	responses   []*discordgo.InteractionResponse
	deadlines   []time.Time // deadline del ctx de cada intento; cero = sin deadline
	bulk        []bulkCall
	creates     []createCall
	sent        map[string][]string
	bulkErr     error
}

func (f *fakeClient) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	cfg := &discordgo.RequestConfig{Request: &http.Request{}}
	for _, opt := range options {
		opt(cfg)
	}
	deadline, _ := cfg.Request.Context().Deadline()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	f.deadlines = append(f.deadlines, deadline)
	if len(f.respondErrs) == 0 {
		return nil
	}
	err := f.respondErrs[0]
	f.respondErrs = f.respondErrs[1:]
	return err
}

func (f *fakeClient) ApplicationCommandBulkOverwrite(appID, guildID string, cmds []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bulk = append(f.bulk, bulkCall{appID, guildID, cmds})
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}
	return cmds, nil
}

func (f *fakeClient) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, _ ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, createCall{appID, guildID, cmd})
	out := *cmd
	out.ID = "cmd-" + cmd.Name
	return &out, nil
}

func (f *fakeClient) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sent == nil {
		f.sent = map[string][]string{}
	}
	f.sent[channelID] = append(f.sent[channelID], content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

type fakeJournal struct {
	mu   sync.Mutex
	recs []storage.InteractionRecord
}

func (j *fakeJournal) Record(_ context.Context, rec storage.InteractionRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.recs = append(j.recs, rec)
	return nil
}

type fixedDrawer int

func (f fixedDrawer) Draw(_, _ int) int { return int(f) }

func testRouter(api Client, drawn int, journal Journal) *Router {
	log := logging.Discard()
	d := service.NewDispatcher(service.NewRouletteService(fixedDrawer(drawn), nil, log), log)
	return newRouter(api, d, service.NewMentionService(func(int) int { return 0 }), journal, log, Options{
		Reply: ReplyPolicy{Retries: 2, Backoff: 1},
	})
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:        "i-" + name,
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		Member:    &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
		Data: discordgo.ApplicationCommandInteractionData{
			ID:      "data-" + name,
			Name:    name,
			Options: opts,
		},
	}
}

func numberOption(v float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "number",
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: v,
	}
}
