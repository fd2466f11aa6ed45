package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nhle/kidpreneur-hub/internal/logger"
	"github.com/nhle/kidpreneur-hub/internal/model"
)

// Adapter reads and writes the three persisted values on top of a KV.
//
// Loading never fails because of bad data: a missing key or a value that
// cannot be parsed yields the default and a warning in the log. Errors
// from the KV itself are returned.
type Adapter struct {
	kv  KV
	log *slog.Logger
}

// NewAdapter wraps kv.
func NewAdapter(kv KV) *Adapter {
	return &Adapter{
		kv:  kv,
		log: logger.ComponentLogger("store"),
	}
}

// KV returns the underlying key-value store.
func (a *Adapter) KV() KV {
	return a.kv
}

// Snapshot is everything the adapter loads at startup.
type Snapshot struct {
	Ideas []model.Idea
	Prefs model.Preferences
}

// Load reads the idea collection and both preferences.
func (a *Adapter) Load(ctx context.Context) (Snapshot, error) {
	ideas, err := a.LoadIdeas(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	dark, err := a.LoadDarkMode(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	order, err := a.LoadSortOrder(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Ideas: ideas,
		Prefs: model.Preferences{DarkMode: dark, SortOrder: order},
	}, nil
}

// LoadIdeas reads the idea collection, defaulting to empty.
func (a *Adapter) LoadIdeas(ctx context.Context) ([]model.Idea, error) {
	raw, ok, err := a.kv.Get(ctx, KeyIdeas)
	if err != nil || !ok {
		return nil, err
	}

	var ideas []model.Idea
	if err := json.Unmarshal([]byte(raw), &ideas); err != nil {
		a.log.Warn("unreadable idea collection, starting empty", "key", KeyIdeas, "error", err)
		return nil, nil
	}
	for i, idea := range ideas {
		if !idea.Category.Valid() {
			a.log.Warn("unknown category, clearing it", "id", idea.ID, "category", idea.Category)
			ideas[i].Category = model.CategoryNone
		}
	}
	return ideas, nil
}

// LoadDarkMode reads the theme flag, defaulting to false (light).
func (a *Adapter) LoadDarkMode(ctx context.Context) (bool, error) {
	raw, ok, err := a.kv.Get(ctx, KeyDarkMode)
	if err != nil || !ok {
		return false, err
	}

	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		a.log.Warn("unreadable theme flag, using light", "key", KeyDarkMode, "error", err)
		return false, nil
	}
	return dark, nil
}

// LoadSortOrder reads the sort order, defaulting to newest. The value is
// stored as a raw string, not JSON.
func (a *Adapter) LoadSortOrder(ctx context.Context) (model.SortOrder, error) {
	raw, ok, err := a.kv.Get(ctx, KeySortOrder)
	if err != nil || !ok {
		return model.SortNewest, err
	}

	order := model.ParseSortOrder(raw)
	if string(order) != raw {
		a.log.Warn("unknown sort order, using newest", "key", KeySortOrder, "value", raw)
	}
	return order, nil
}

// SaveIdeas serializes and stores the idea collection. A nil collection
// is stored as an empty array.
func (a *Adapter) SaveIdeas(ctx context.Context, ideas []model.Idea) error {
	if ideas == nil {
		ideas = []model.Idea{}
	}
	data, err := json.Marshal(ideas)
	if err != nil {
		return fmt.Errorf("marshaling ideas: %w", err)
	}
	return a.kv.Set(ctx, KeyIdeas, string(data))
}

// SaveDarkMode stores the theme flag.
func (a *Adapter) SaveDarkMode(ctx context.Context, dark bool) error {
	data, err := json.Marshal(dark)
	if err != nil {
		return fmt.Errorf("marshaling dark mode: %w", err)
	}
	return a.kv.Set(ctx, KeyDarkMode, string(data))
}

// SaveSortOrder stores the sort order as a raw string.
func (a *Adapter) SaveSortOrder(ctx context.Context, order model.SortOrder) error {
	return a.kv.Set(ctx, KeySortOrder, string(model.ParseSortOrder(string(order))))
}

// ClearIdeas removes the idea collection entirely.
func (a *Adapter) ClearIdeas(ctx context.Context) error {
	return a.kv.Delete(ctx, KeyIdeas)
}
