package types

import (
	"time"

	"github.com/google/uuid"
)

// RunID represents a UUIDv7 identifier for one resolution run.
// String alias enables type safety while maintaining JSON string serialization.
type RunID string

// NewRunID generates a UUIDv7 run identifier.
// Time-ordered IDs keep run logs sortable by creation time.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewRunID() RunID {
	return RunID(uuid.Must(uuid.NewV7()).String())
}

// RunIDTime extracts the timestamp embedded in a UUIDv7 run ID.
// Lets output artifacts carry a creation time without a second clock read.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func RunIDTime(id RunID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
