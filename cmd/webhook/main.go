package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	discordrouter "github.com/jose-valero/jukebox-bot/internal/adapters/discord"
	"github.com/jose-valero/jukebox-bot/internal/adapters/httpapi"
	"github.com/jose-valero/jukebox-bot/internal/app/service"
	"github.com/jose-valero/jukebox-bot/internal/infra/config"
	"github.com/jose-valero/jukebox-bot/internal/infra/logging"
	"github.com/jose-valero/jukebox-bot/internal/infra/storage"
)

var srv *httpapi.Server

func init() {
	cfg, err := config.ParseWebhook()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel, "json")
	slog.SetDefault(logger)

	// DB opcional (si DATABASE_URL está vacío, igual respondemos)
	var (
		journal discordrouter.Journal
		spins   service.SpinRecorder
	)
	if cfg.DatabaseURL != "" {
		db, err := storage.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("db open, running without journal", slog.String("err", err.Error()))
		} else {
			journal = storage.NewInteractionRepo(db)
			spins = storage.NewRouletteRepo(db)
		}
	}

	seed := cfg.RouletteSeed
	if seed == 0 {
		if seed, err = service.RandomSeed(); err != nil {
			log.Fatal(err)
		}
	}

	pub, _ := config.PublicKey(cfg.DiscordPublicKey) // validada en ParseWebhook
	roulette := service.NewRouletteService(service.NewRandDrawer(seed), spins, logger)
	srv = httpapi.New(logger, pub, service.NewDispatcher(roulette, logger), journal)
}

func main() { lambda.Start(httpapi.LambdaHandler(srv)) }
