package service

import (
	"context"

	"github.com/jose-valero/jukebox-bot/internal/domain"
	"github.com/jose-valero/jukebox-bot/internal/infra/storage"
)

// Handler produce la respuesta de un comando. Sin estado: todo entra por parámetros.
type Handler func(ctx context.Context, inv domain.Invocation) string

// Lo implementa internal/infra/storage.RouletteRepo
type SpinRecorder interface {
	RecordSpin(ctx context.Context, s storage.RouletteSpin) error
}

// Drawer saca un entero uniforme en [min, max].
type Drawer interface {
	Draw(min, max int) int
}
