package storage

import (
	"context"
	"database/sql"
	"time"

	pq "github.com/lib/pq"
)

type InteractionRepo struct{ db *sql.DB }

func NewInteractionRepo(db *sql.DB) *InteractionRepo { return &InteractionRepo{db: db} }

func (r *InteractionRepo) Record(ctx context.Context, rec InteractionRecord) error {
	var errText *string
	if rec.Error != "" {
		errText = &rec.Error
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO interaction_log
  (interaction_id, guild_id, user_id, command, reply, delivered, error, elapsed_ms)
VALUES
  ($1,$2,$3,$4,$5,$6,$7,$8)
`, rec.InteractionID, rec.GuildID, rec.UserID, rec.Command, rec.Reply, rec.Delivered, errText, rec.Elapsed.Milliseconds())
	return err
}

// Prune borra las filas de `commands` más viejas que olderThan. Devuelve cuántas borró.
func (r *InteractionRepo) Prune(ctx context.Context, commands []string, olderThan time.Duration) (int64, error) {
	if len(commands) == 0 || olderThan <= 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `
DELETE FROM interaction_log
 WHERE command = ANY($1)
   AND created_at < now() - $2::interval
`, pq.Array(commands), durToInterval(olderThan))
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *InteractionRepo) recent(ctx context.Context, guildID string, limit int) ([]InteractionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT interaction_id, guild_id, user_id, command, reply, delivered, COALESCE(error, ''), elapsed_ms, created_at
  FROM interaction_log
 WHERE guild_id = $1
 ORDER BY created_at DESC
 LIMIT $2
`, guildID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []InteractionRecord
	for rows.Next() {
		var (
			rec InteractionRecord
			ms  int64
		)
		if err := rows.Scan(&rec.InteractionID, &rec.GuildID, &rec.UserID, &rec.Command, &rec.Reply,
			&rec.Delivered, &rec.Error, &ms, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Elapsed = time.Duration(ms) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}
