package store

import (
	"context"
	"time"

	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/srs"
)

// ItemRecord pairs an item's static content with its scheduling state.
type ItemRecord struct {
	Entry itemgraph.Entry
	State srs.Item
}

// ItemRepo provides load/save access to learnable items. The scheduling
// engine never calls these; callers orchestrate load -> transition -> save.
type ItemRepo interface {
	// CreateItem inserts a new item with a freshly assigned ID. Gated
	// items (level > 1 or with prerequisites) start locked; the rest
	// start active and immediately due.
	CreateItem(ctx context.Context, entry itemgraph.Entry) (ItemRecord, error)

	// LoadItems returns every item in the collection.
	LoadItems(ctx context.Context) ([]ItemRecord, error)

	// SaveItem persists updated scheduling state for an existing item.
	SaveItem(ctx context.Context, item srs.Item) error

	// SaveItems persists a batch of scheduling states.
	SaveItems(ctx context.Context, items []srs.Item) error

	// DeleteAll removes every item. Used by the reset command.
	DeleteAll(ctx context.Context) (int, error)
}

// ReviewEventData captures one graded review answer.
type ReviewEventData struct {
	ItemID       string
	Track        srs.Track
	Difficulty   srs.Difficulty
	Quality      int
	Correct      bool
	FromStage    int
	ToStage      int
	NextReviewAt time.Time
}

// UnlockEventData captures an item leaving the locked state.
type UnlockEventData struct {
	ItemID  string
	Trigger string
}

// ItemStats aggregates an item's review history.
type ItemStats struct {
	ItemID   string
	Reviews  int
	Correct  int
	Accuracy float64
}

// EventRepo provides append access to the domain event log and the
// aggregate queries the stats command needs.
type EventRepo interface {
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	AppendUnlockEvent(ctx context.Context, data UnlockEventData) error

	// RecentReviewAccuracy returns the accuracy over the last n reviews
	// of an item, along with how many reviews were found.
	RecentReviewAccuracy(ctx context.Context, itemID string, n int) (float64, int, error)

	// AllItemStats returns per-item lifetime review aggregates.
	AllItemStats(ctx context.Context) ([]ItemStats, error)
}

// SettingRepo persists collection-level configuration.
type SettingRepo interface {
	// Policy returns the collection's active scheduling policy, or
	// empty when none has been stored yet.
	Policy(ctx context.Context) (srs.Kind, error)

	// SetPolicy stores the collection's scheduling policy. Changing an
	// established policy is a data migration, not a setting flip, so
	// implementations reject overwriting a different stored value.
	SetPolicy(ctx context.Context, kind srs.Kind) error
}
