package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/jukebox-bot/internal/domain"
)

func TestCommandsMatchDomain(t *testing.T) {
	cmds := Commands()
	known := domain.KnownCommands()
	if len(cmds) != len(known) {
		t.Fatalf("expected %d commands, got %d", len(known), len(cmds))
	}
	for i, c := range cmds {
		if c.Name != known[i].String() {
			t.Fatalf("command %d = %q, want %q", i, c.Name, known[i])
		}
		if c.Description == "" {
			t.Fatalf("command %q has no description", c.Name)
		}
	}
}

func TestCommandNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Commands() {
		if seen[c.Name] {
			t.Fatalf("duplicate command %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestCommandOptions(t *testing.T) {
	byName := map[string]*discordgo.ApplicationCommand{}
	for _, c := range Commands() {
		byName[c.Name] = c
	}

	play := byName["play"]
	if len(play.Options) != 1 {
		t.Fatalf("play options = %d", len(play.Options))
	}
	if o := play.Options[0]; o.Name != "query" || o.Type != discordgo.ApplicationCommandOptionString || !o.Required {
		t.Fatalf("unexpected play option %+v", o)
	}

	roulette := byName["roulette"]
	if len(roulette.Options) != 1 {
		t.Fatalf("roulette options = %d", len(roulette.Options))
	}
	o := roulette.Options[0]
	if o.Name != "number" || o.Type != discordgo.ApplicationCommandOptionInteger || !o.Required {
		t.Fatalf("unexpected roulette option %+v", o)
	}
	if o.MinValue == nil || *o.MinValue != 1 {
		t.Fatalf("roulette min = %v, want 1", o.MinValue)
	}
	if o.MaxValue != 5 {
		t.Fatalf("roulette max = %v, want 5", o.MaxValue)
	}

	for _, name := range []string{"ping", "pause", "resume", "skip", "stop", "queue"} {
		if len(byName[name].Options) != 0 {
			t.Fatalf("%s should take no options", name)
		}
	}
}

func TestCommandsAreFreshValues(t *testing.T) {
	a := RouletteCommand()
	b := RouletteCommand()
	*a.Options[0].MinValue = 99
	if *b.Options[0].MinValue != 1 {
		t.Fatal("descriptors must not share state")
	}
}
