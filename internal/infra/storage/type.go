package storage

import "time"

// InteractionRecord es una fila del journal: un comando despachado y si se pudo responder.
type InteractionRecord struct {
	InteractionID string
	GuildID       string
	UserID        string
	Command       string
	Reply         string
	Delivered     bool
	Error         string
	Elapsed       time.Duration
	CreatedAt     time.Time
}

type RouletteSpin struct {
	GuildID   string
	UserID    string
	Picked    int
	Drawn     int
	Lost      bool
	CreatedAt time.Time
}
