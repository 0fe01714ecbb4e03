package timekeeper

import (
	"context"
	"time"
)

// DefaultAutosaveInterval is the cadence of RunAutosave when none is given.
const DefaultAutosaveInterval = 5 * time.Minute

// RunAutosave calls Autosave every interval until ctx is done, independent
// of the segment state. It returns ctx.Err().
func (keeper *TimeKeeper) RunAutosave(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			keeper.Autosave()
		}
	}
}
