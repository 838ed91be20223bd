package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/mizutori/kioku/ent"
	"github.com/mizutori/kioku/ent/reviewevent"
)

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Each event type lives in its own ent-managed
// table, so per-table auto-increment IDs can't establish cross-type
// ordering; this shared counter assigns a single increasing sequence to
// every event regardless of type.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetTrack(string(data.Track)).
		SetDifficulty(string(data.Difficulty)).
		SetQuality(data.Quality).
		SetCorrect(data.Correct).
		SetFromStage(data.FromStage).
		SetToStage(data.ToStage)

	if !data.NextReviewAt.IsZero() {
		builder = builder.SetNextReviewAt(data.NextReviewAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendUnlockEvent(ctx context.Context, data UnlockEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.UnlockEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetTrigger(data.Trigger).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save unlock event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentReviewAccuracy(ctx context.Context, itemID string, n int) (float64, int, error) {
	events, err := r.client.ReviewEvent.Query().
		Where(reviewevent.ItemID(itemID)).
		Order(ent.Desc(reviewevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query reviews: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(count), count, nil
}

func (r *eventRepo) AllItemStats(ctx context.Context) ([]ItemStats, error) {
	events, err := r.client.ReviewEvent.Query().
		Order(ent.Asc(reviewevent.FieldItemID), ent.Asc(reviewevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	byItem := make(map[string]*ItemStats)
	var order []string
	for _, e := range events {
		st, ok := byItem[e.ItemID]
		if !ok {
			st = &ItemStats{ItemID: e.ItemID}
			byItem[e.ItemID] = st
			order = append(order, e.ItemID)
		}
		st.Reviews++
		if e.Correct {
			st.Correct++
		}
	}

	stats := make([]ItemStats, 0, len(order))
	for _, id := range order {
		st := byItem[id]
		if st.Reviews > 0 {
			st.Accuracy = float64(st.Correct) / float64(st.Reviews)
		}
		stats = append(stats, *st)
	}
	return stats, nil
}
