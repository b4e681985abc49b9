package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Guilds para el ready, voice states y mensajes para las menciones.
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates | discordgo.IntentsGuildMessages

func authHeader(token string) string {
	auth := strings.TrimSpace(token)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth
}

// NewSession arma la sesión pero no abre el websocket.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New(authHeader(token))
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = Intents
	return s, nil
}
