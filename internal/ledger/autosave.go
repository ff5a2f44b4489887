package ledger

import (
	"context"
	"time"
)

// Autosave re-persists the ledger at a fixed interval until ctx is
// cancelled. Every mutation already persists synchronously; this is a
// redundant safety net, not a correctness requirement.
func (s *Service) Autosave(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Save()
		}
	}
}
