package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SweepGuard is the single-flight barrier for the auto-renew sweep: an
// agreement may only be advanced once per Pacific calendar day, even if
// the sweep runs twice before any event state changes.
type SweepGuard interface {
	// TryAcquire returns true exactly once per (agreement, day) pair.
	TryAcquire(ctx context.Context, agreementID uuid.UUID, day time.Time) (bool, error)
	// Release frees the key so a failed advance can be retried within
	// the same day.
	Release(ctx context.Context, agreementID uuid.UUID, day time.Time) error
}

func key(agreementID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("sweep:%s:%s", agreementID, day.Format("2006-01-02"))
}
