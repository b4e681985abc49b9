package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/jukebox-bot/internal/domain"
)

// InvocationFrom traduce una interacción de comando a lo que ven los handlers.
// No hace panic si falta member/user/options.
func InvocationFrom(i *discordgo.Interaction) domain.Invocation {
	inv := domain.Invocation{
		InteractionID: i.ID,
		GuildID:       i.GuildID,
		ChannelID:     i.ChannelID,
		UserID:        interactionUserID(i),
	}
	if i.Type != discordgo.InteractionApplicationCommand {
		return inv
	}
	data, ok := i.Data.(discordgo.ApplicationCommandInteractionData)
	if !ok {
		return inv
	}
	inv.Name = data.Name
	inv.Command = domain.ParseCommand(data.Name)
	inv.Options = resolveOptions(data.Options)
	return inv
}

func interactionUserID(i *discordgo.Interaction) string {
	// en guild viene en member, en DM en user
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func resolveOptions(in []*discordgo.ApplicationCommandInteractionDataOption) domain.Options {
	if len(in) == 0 {
		return nil
	}
	out := make(domain.Options, 0, len(in))
	for _, o := range in {
		if o == nil {
			continue
		}
		out = append(out, domain.Option{
			Name:  o.Name,
			Kind:  optionKind(o.Type),
			Value: o.Value,
		})
	}
	return out
}

func optionKind(t discordgo.ApplicationCommandOptionType) domain.OptionKind {
	switch t {
	case discordgo.ApplicationCommandOptionString:
		return domain.OptionString
	case discordgo.ApplicationCommandOptionInteger:
		return domain.OptionInteger
	case discordgo.ApplicationCommandOptionBoolean:
		return domain.OptionBoolean
	case discordgo.ApplicationCommandOptionNumber:
		return domain.OptionNumber
	}
	return domain.OptionOther
}

func mentions(m *discordgo.Message, userID string) bool {
	if userID == "" {
		return false
	}
	for _, u := range m.Mentions {
		if u != nil && u.ID == userID {
			return true
		}
	}
	return false
}
