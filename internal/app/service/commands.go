package service

import (
	"context"

	"github.com/jose-valero/jukebox-bot/internal/domain"
)

const (
	PingReply      = "🏓 Pong!"
	NotImplemented = "Not implemented yet."

	UnexpectedError = "❌ Something went wrong running this command."
)

func Ping(_ context.Context, _ domain.Invocation) string { return PingReply }

// Comandos de música: sin motor de audio todavía, responden el stub siempre.

func Play(_ context.Context, _ domain.Invocation) string   { return NotImplemented }
func Pause(_ context.Context, _ domain.Invocation) string  { return NotImplemented }
func Resume(_ context.Context, _ domain.Invocation) string { return NotImplemented }
func Skip(_ context.Context, _ domain.Invocation) string   { return NotImplemented }
func Stop(_ context.Context, _ domain.Invocation) string   { return NotImplemented }
func Queue(_ context.Context, _ domain.Invocation) string  { return NotImplemented }

// Fallback para nombres que no conocemos.
func Fallback(_ context.Context, _ domain.Invocation) string { return NotImplemented }
