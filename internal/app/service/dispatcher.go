package service

import (
	"context"
	"log/slog"

	"github.com/jose-valero/jukebox-bot/internal/domain"
)

type Dispatcher struct {
	log      *slog.Logger
	handlers map[domain.Command]Handler
}

func NewDispatcher(roulette *RouletteService, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	if roulette == nil {
		log.Warn("dispatcher without roulette service: /roulette will reply the fallback")
	}
	d := &Dispatcher{log: log, handlers: make(map[domain.Command]Handler, len(domain.KnownCommands()))}
	for _, c := range domain.KnownCommands() {
		d.handlers[c] = handlerFor(c, roulette)
	}
	return d
}

func handlerFor(c domain.Command, roulette *RouletteService) Handler {
	switch c {
	case domain.CommandPing:
		return Ping
	case domain.CommandPlay:
		return Play
	case domain.CommandPause:
		return Pause
	case domain.CommandResume:
		return Resume
	case domain.CommandSkip:
		return Skip
	case domain.CommandStop:
		return Stop
	case domain.CommandQueue:
		return Queue
	case domain.CommandRoulette:
		if roulette != nil {
			return roulette.Run
		}
	}
	return Fallback
}

// Dispatch corre el handler del comando y devuelve el texto a responder.
// Un panic en el handler se convierte en UnexpectedError.
func (d *Dispatcher) Dispatch(ctx context.Context, inv domain.Invocation) (content string) {
	defer func() {
		if rec := recover(); rec != nil {
			d.log.Error("panic in cmd", slog.String("name", inv.Name), slog.Any("panic", rec))
			content = UnexpectedError
		}
	}()

	h, ok := d.handlers[inv.Command]
	if !ok {
		d.log.Debug("unknown command, using fallback", slog.String("name", inv.Name))
		return Fallback(ctx, inv)
	}
	return h(ctx, inv)
}
