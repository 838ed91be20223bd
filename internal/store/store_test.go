package store

import (
	"context"
	"testing"
	"time"

	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/srs"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestItemRepo_CreateAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	rec, err := repo.CreateItem(ctx, itemgraph.Entry{
		Kind:    itemgraph.KindVocabulary,
		Prompt:  "犬",
		Meaning: "dog",
		Reading: "いぬ",
		Level:   1,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if rec.Entry.ID == "" {
		t.Fatal("expected assigned item ID")
	}
	if rec.State.Status != srs.StatusActive {
		t.Errorf("level-1 item status = %s, want active", rec.State.Status)
	}

	gated, err := repo.CreateItem(ctx, itemgraph.Entry{
		Kind:          itemgraph.KindCharacter,
		Prompt:        "水",
		Level:         2,
		Prerequisites: []string{rec.Entry.ID},
	})
	if err != nil {
		t.Fatalf("CreateItem gated: %v", err)
	}
	if gated.State.Status != srs.StatusLocked {
		t.Errorf("gated item status = %s, want locked", gated.State.Status)
	}

	records, err := repo.LoadItems(ctx)
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
}

func TestItemRepo_SaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	rec, err := repo.CreateItem(ctx, itemgraph.Entry{
		Kind: itemgraph.KindVocabulary, Prompt: "猫", Level: 1,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := rec.State
	state.Stage = 1
	state.CorrectCount = 3
	state.Streak = 3
	state.Meaning.Correct = 2
	state.Reading.Correct = 1
	state.LastReviewedAt = now
	state.NextReviewAt = now.Add(8 * time.Hour)

	if err := repo.SaveItem(ctx, state); err != nil {
		t.Fatalf("SaveItem: %v", err)
	}

	records, err := repo.LoadItems(ctx)
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	got := records[0].State
	if got.Stage != 1 || got.CorrectCount != 3 || got.Streak != 3 {
		t.Errorf("state = %+v", got)
	}
	if got.Meaning.Correct != 2 || got.Reading.Correct != 1 {
		t.Errorf("progress = %d/%d, want 2/1", got.Meaning.Correct, got.Reading.Correct)
	}
	if !got.NextReviewAt.Equal(now.Add(8 * time.Hour)) {
		t.Errorf("NextReviewAt = %v", got.NextReviewAt)
	}
}

func TestItemRepo_SaveUnknownItem(t *testing.T) {
	s := openTestStore(t)
	err := s.ItemRepo().SaveItem(context.Background(), srs.Item{ID: "ghost"})
	if err == nil {
		t.Fatal("expected error for unknown item")
	}
}

func TestEventRepo_RecentReviewAccuracy(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for _, correct := range []bool{true, true, false, true} {
		err := events.AppendReviewEvent(ctx, ReviewEventData{
			ItemID:  "v1",
			Correct: correct,
		})
		if err != nil {
			t.Fatalf("AppendReviewEvent: %v", err)
		}
	}

	acc, n, err := events.RecentReviewAccuracy(ctx, "v1", 10)
	if err != nil {
		t.Fatalf("RecentReviewAccuracy: %v", err)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	// Window smaller than history only counts the most recent reviews.
	acc, n, err = events.RecentReviewAccuracy(ctx, "v1", 2)
	if err != nil {
		t.Fatalf("RecentReviewAccuracy: %v", err)
	}
	if n != 2 || acc != 0.5 {
		t.Errorf("windowed accuracy = %v over %d, want 0.5 over 2", acc, n)
	}
}

func TestSettingRepo_PolicyConflict(t *testing.T) {
	s := openTestStore(t)
	settings := s.SettingRepo()
	ctx := context.Background()

	kind, err := settings.Policy(ctx)
	if err != nil {
		t.Fatalf("Policy: %v", err)
	}
	if kind != "" {
		t.Fatalf("fresh store policy = %q, want empty", kind)
	}

	if err := settings.SetPolicy(ctx, srs.KindDualTrack); err != nil {
		t.Fatalf("SetPolicy: %v", err)
	}
	// Idempotent for the same kind.
	if err := settings.SetPolicy(ctx, srs.KindDualTrack); err != nil {
		t.Fatalf("SetPolicy repeat: %v", err)
	}
	// Switching policies is a migration, not a setting flip.
	if err := settings.SetPolicy(ctx, srs.KindSM2); err == nil {
		t.Fatal("expected error when switching stored policy")
	}
}
