package store

import (
	"context"
	"errors"
	"slices"

	"github.com/nhle/kidpreneur-hub/internal/state"
)

// Observer persists state transitions. It is called after every transition
// with the previous and next snapshots and writes only the keys whose
// value changed, each one independently.
type Observer struct {
	adapter *Adapter
}

// NewObserver returns an observer writing through adapter.
func NewObserver(adapter *Adapter) *Observer {
	return &Observer{adapter: adapter}
}

// Persist writes whatever differs between prev and next. All changed keys
// are attempted even if one fails; the returned error joins the failures.
func (o *Observer) Persist(ctx context.Context, prev, next state.State) error {
	var errs []error

	if !slices.Equal(prev.Ideas, next.Ideas) {
		if len(next.Ideas) == 0 {
			errs = append(errs, o.adapter.ClearIdeas(ctx))
		} else {
			errs = append(errs, o.adapter.SaveIdeas(ctx, next.Ideas))
		}
	}

	if prev.Prefs.DarkMode != next.Prefs.DarkMode {
		errs = append(errs, o.adapter.SaveDarkMode(ctx, next.Prefs.DarkMode))
	}

	if prev.Prefs.SortOrder != next.Prefs.SortOrder {
		errs = append(errs, o.adapter.SaveSortOrder(ctx, next.Prefs.SortOrder))
	}

	return errors.Join(errs...)
}
