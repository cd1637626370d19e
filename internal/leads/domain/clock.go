package domain

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies timestamps. Injected so scoring and repository logic
// stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator supplies lead and interaction ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUIDv4 ids.
type UUIDGenerator struct{}

// NewID returns a new UUID string.
func (UUIDGenerator) NewID() string { return uuid.NewString() }
