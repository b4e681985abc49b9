package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/jukebox-bot/internal/app/service"
	"github.com/jose-valero/jukebox-bot/internal/domain"
)

// Commands es el registro completo, en el orden de domain.KnownCommands.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		PingCommand(),
		PlayCommand(),
		PauseCommand(),
		ResumeCommand(),
		SkipCommand(),
		StopCommand(),
		QueueCommand(),
		RouletteCommand(),
	}
}

func PingCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        domain.CommandPing.String(),
		Description: "A ping command",
	}
}

func PlayCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        domain.CommandPlay.String(),
		Description: "Play a song by name or link",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "query",
			Description: "The name of the song you want to play or the youtube/spotify link",
			Required:    true,
		}},
	}
}

func PauseCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        domain.CommandPause.String(),
		Description: "Pause the current song",
	}
}

func ResumeCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        domain.CommandResume.String(),
		Description: "Resume the current song",
	}
}

func SkipCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        domain.CommandSkip.String(),
		Description: "Skip the current song",
	}
}

func StopCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        domain.CommandStop.String(),
		Description: "Stop song and clear the queue",
	}
}

func QueueCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        domain.CommandQueue.String(),
		Description: "See the queue",
	}
}

// La descripción promete el kick, pero el handler no lo hace.
func RouletteCommand() *discordgo.ApplicationCommand {
	minValue := float64(service.RouletteMin)
	return &discordgo.ApplicationCommand{
		Name:        domain.CommandRoulette.String(),
		Description: "Select a number from 1 to 5, if you lose you are kicked from the voice channel",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        service.RouletteOption,
			Description: "Number from 1 to 5",
			Required:    true,
			MinValue:    &minValue,
			MaxValue:    float64(service.RouletteMax),
		}},
	}
}
