package session

import (
	"context"
	"time"
)

// RunFlushLoop persists the store every interval until ctx is cancelled,
// then flushes one final time.
func (s *Store) RunFlushLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Flush()
			return
		case <-ticker.C:
			s.Flush()
		}
	}
}

// RunEvictionLoop drops stale profiles every interval until ctx is
// cancelled.
func (s *Store) RunEvictionLoop(ctx context.Context, interval, retention time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.EvictStale(retention)
		}
	}
}
