package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jose-valero/jukebox-bot/internal/infra/config"
	"github.com/jose-valero/jukebox-bot/internal/infra/logging"
)

var logger = logging.New(os.Stdout, os.Getenv("LOG_LEVEL"), "json")

func handler(ctx context.Context) (string, error) {
	cfg, err := config.ParseJanitor()
	if err != nil {
		return fmt.Sprintf("config: %v", err), nil
	}

	pcfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}
	pcfg.MaxConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-cfg.JournalRetention)
	var total int64
	for _, q := range []string{
		`DELETE FROM interaction_log WHERE created_at < $1`,
		`DELETE FROM roulette_spins  WHERE created_at < $1`,
	} {
		tag, err := pool.Exec(cctx, q, cutoff)
		if err != nil {
			logger.Error("janitor delete", slog.String("err", err.Error()))
			continue
		}
		total += tag.RowsAffected()
	}

	logger.Info("janitor done", slog.Int64("rows", total), slog.Time("cutoff", cutoff))
	return "ok", nil
}

func main() { lambda.Start(handler) }
