package db

import "time"

// KVEntry is one stored JSON document.
type KVEntry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}
