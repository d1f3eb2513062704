package entity

import (
	"time"
)

// Base holds the store-assigned identity and bookkeeping timestamps.
// ID is a UUID string for postgres and memory, an ObjectID hex string for mongo.
type Base struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
