// Package idgen generates goal IDs.
package idgen

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/runoshun/goals/internal/domain"
)

// Ensure ULID implements domain.IDGenerator.
var _ domain.IDGenerator = (*ULID)(nil)

// ULID generates lexicographically sortable IDs.
// IDs from one generator are strictly increasing, even within a millisecond.
type ULID struct {
	entropy io.Reader
	mu      sync.Mutex
}

// NewULID creates a generator reading entropy from crypto/rand.
func NewULID() *ULID {
	return NewULIDWithEntropy(rand.Reader)
}

// NewULIDWithEntropy creates a generator with a custom entropy source.
// This is useful for testing.
func NewULIDWithEntropy(r io.Reader) *ULID {
	return &ULID{entropy: ulid.Monotonic(r, 0)}
}

// NewID returns a new ULID string stamped with now.
func (g *ULID) NewID(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), g.entropy).String()
}

// Time returns the timestamp encoded in id.
func Time(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
