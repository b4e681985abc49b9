// Package logging arma el *slog.Logger del proceso sobre charmbracelet/log.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	charm "github.com/charmbracelet/log"
)

func New(w io.Writer, level, format string) *slog.Logger {
	lvl, err := charm.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = charm.InfoLevel
	}

	opts := charm.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}
	switch strings.ToLower(format) {
	case "json":
		opts.Formatter = charm.JSONFormatter
	case "logfmt":
		opts.Formatter = charm.LogfmtFormatter
	default:
		opts.Formatter = charm.TextFormatter
	}

	return slog.New(charm.NewWithOptions(w, opts))
}

// Discard sirve para tests y para componentes sin logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
