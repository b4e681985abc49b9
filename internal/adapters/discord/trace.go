package discord

import (
	"log/slog"
	"time"
)

func step(log *slog.Logger, label string, attrs ...any) func() {
	start := time.Now()
	return func() {
		log.Debug("[trace] "+label, append(attrs, slog.Duration("elapsed", time.Since(start)))...)
	}
}
