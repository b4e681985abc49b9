package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DiscordToken     string `env:"DISCORD_TOKEN,required,notEmpty"`
	DiscordPublicKey string `env:"DISCORD_PUBLIC_KEY"` // hex; habilita POST /interactions
	DatabaseURL      string `env:"DATABASE_URL"`       // opcional: sin DB no hay journal
	HTTPAddr         string `env:"HTTP_ADDR" envDefault:":8080"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	ReplyTimeout time.Duration `env:"REPLY_TIMEOUT" envDefault:"2500ms"`
	ReplyRetries int           `env:"REPLY_RETRIES" envDefault:"2"`
	ReplyBackoff time.Duration `env:"REPLY_BACKOFF" envDefault:"200ms"`
	MaxInflight  int64         `env:"MAX_INFLIGHT" envDefault:"32"`

	JournalRetention time.Duration `env:"JOURNAL_RETENTION" envDefault:"720h"`
	PruneInterval    time.Duration `env:"PRUNE_INTERVAL" envDefault:"1h"`

	RouletteSeed    int64         `env:"ROULETTE_SEED"` // 0 = semilla aleatoria
	MentionCooldown time.Duration `env:"MENTION_COOLDOWN" envDefault:"3s"`
}

// WebhookConfig es lo que necesita la lambda de interactions: no usa gateway ni token.
type WebhookConfig struct {
	DiscordPublicKey string `env:"DISCORD_PUBLIC_KEY,required,notEmpty"`
	DatabaseURL      string `env:"DATABASE_URL"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	RouletteSeed     int64  `env:"ROULETTE_SEED"`
}

// JanitorConfig es la lambda de limpieza: solo DB y retención.
type JanitorConfig struct {
	DatabaseURL      string        `env:"DATABASE_URL,required,notEmpty"`
	JournalRetention time.Duration `env:"JOURNAL_RETENTION" envDefault:"720h"`
}

// Parse lee el entorno sin terminar el proceso.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxInflight <= 0 {
		return Config{}, fmt.Errorf("MAX_INFLIGHT must be positive, got %d", cfg.MaxInflight)
	}
	if cfg.ReplyRetries < 0 {
		return Config{}, fmt.Errorf("REPLY_RETRIES must not be negative, got %d", cfg.ReplyRetries)
	}
	if cfg.ReplyTimeout <= 0 {
		return Config{}, fmt.Errorf("REPLY_TIMEOUT must be positive, got %s", cfg.ReplyTimeout)
	}
	if cfg.DiscordPublicKey != "" {
		if _, err := PublicKey(cfg.DiscordPublicKey); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Load es Parse pero fatal: se llama antes de abrir cualquier conexión.
func Load() Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func ParseWebhook() (WebhookConfig, error) {
	var cfg WebhookConfig
	if err := env.Parse(&cfg); err != nil {
		return WebhookConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := PublicKey(cfg.DiscordPublicKey); err != nil {
		return WebhookConfig{}, err
	}
	return cfg, nil
}

// PublicKey decodifica la public key de la aplicación (hex, 32 bytes).
func PublicKey(hexKey string) (ed25519.PublicKey, error) {
	b, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY: %w", err)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY: want %d bytes, got %d", ed25519.PublicKeySize, len(b))
	}
	return ed25519.PublicKey(b), nil
}

func ParseJanitor() (JanitorConfig, error) {
	var cfg JanitorConfig
	if err := env.Parse(&cfg); err != nil {
		return JanitorConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JournalRetention <= 0 {
		return JanitorConfig{}, fmt.Errorf("JOURNAL_RETENTION must be positive, got %s", cfg.JournalRetention)
	}
	return cfg, nil
}
