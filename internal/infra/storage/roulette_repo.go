package storage

import (
	"context"
	"database/sql"
)

type RouletteRepo struct{ db *sql.DB }

func NewRouletteRepo(db *sql.DB) *RouletteRepo { return &RouletteRepo{db: db} }

func (r *RouletteRepo) RecordSpin(ctx context.Context, s RouletteSpin) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO roulette_spins (guild_id, user_id, picked, drawn, lost)
VALUES ($1,$2,$3,$4,$5)
`, s.GuildID, s.UserID, s.Picked, s.Drawn, s.Lost)
	return err
}
