package snapshot

import (
	"context"
	"time"

	"scholar-duty-backend/src/reconcile"
)

// Static serves a fixed snapshot and counts fetches. Used in tests.
type Static struct {
	Snapshot reconcile.Snapshot
	Err      error
	Calls    int
}

func (s *Static) Fetch(_ context.Context, _, _ time.Time) (reconcile.Snapshot, error) {
	s.Calls++
	return s.Snapshot, s.Err
}
