package service

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/jose-valero/jukebox-bot/internal/domain"
	"github.com/jose-valero/jukebox-bot/internal/infra/storage"
)

const (
	RouletteMin    = 1
	RouletteMax    = 5
	RouletteOption = "number"

	RouletteLose = "You lose!"
	RouletteWin  = "You win!"
)

var RouletteBadNumber = fmt.Sprintf("⚠️ You need to pick a number between %d and %d to play roulette.", RouletteMin, RouletteMax)

// RandDrawer envuelve math/rand con un mutex: *rand.Rand no es seguro entre goroutines.
type RandDrawer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandDrawer(seed int64) *RandDrawer {
	return &RandDrawer{rng: rand.New(rand.NewSource(seed))}
}

func (d *RandDrawer) Draw(min, max int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(max-min+1) + min
}

// RandomSeed genera una semilla con crypto/rand.
func RandomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

type RouletteService struct {
	draw Drawer
	rec  SpinRecorder // opcional
	log  *slog.Logger
}

func NewRouletteService(draw Drawer, rec SpinRecorder, log *slog.Logger) *RouletteService {
	if log == nil {
		log = slog.Default()
	}
	return &RouletteService{draw: draw, rec: rec, log: log}
}

// Run no expulsa a nadie del canal de voz aunque la descripción del comando lo diga.
func (s *RouletteService) Run(ctx context.Context, inv domain.Invocation) string {
	picked, ok := inv.Options.Int(RouletteOption)
	if !ok || picked < RouletteMin || picked > RouletteMax {
		s.log.Warn("roulette: missing or invalid number",
			slog.String("guild", inv.GuildID), slog.String("user", inv.UserID), slog.Int("options", len(inv.Options)))
		return RouletteBadNumber
	}

	drawn := s.draw.Draw(RouletteMin, RouletteMax)
	lost := int64(drawn) == picked

	if s.rec != nil {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
		err := s.rec.RecordSpin(rctx, storage.RouletteSpin{
			GuildID: inv.GuildID,
			UserID:  inv.UserID,
			Picked:  int(picked),
			Drawn:   drawn,
			Lost:    lost,
		})
		cancel()
		if err != nil {
			s.log.Error("roulette: record spin", slog.String("err", err.Error()))
		}
	}

	if lost {
		return RouletteLose
	}
	return RouletteWin
}
