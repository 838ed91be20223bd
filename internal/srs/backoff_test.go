package srs

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func activeItem(id string) Item {
	return Item{ID: id, Status: StatusActive}
}

func mustApply(t *testing.T, p Policy, item Item, o Outcome) Item {
	t.Helper()
	next, err := p.Apply(item, o, testNow)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return next
}

func TestBackoff_LevelMoves(t *testing.T) {
	tests := []struct {
		name      string
		stage     int
		d         Difficulty
		wantStage int
	}{
		{"easy adds two", 0, Easy, 2},
		{"medium adds one", 3, Medium, 4},
		{"hard drops one", 2, Hard, 1},
		{"hard floors at zero", 0, Hard, 0},
		{"impossible resets", 5, Impossible, 0},
	}

	p, err := New(KindBackoff, StageTable{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := activeItem("v1")
			item.Stage = tt.stage
			next := mustApply(t, p, item, Rated(tt.d))
			if next.Stage != tt.wantStage {
				t.Errorf("Stage = %d, want %d", next.Stage, tt.wantStage)
			}
		})
	}
}

func TestBackoff_IntervalUsesNewLevel(t *testing.T) {
	// srsLevel 2, outcome hard -> level 1, next = now + 1d * 1.5^1.
	p, _ := New(KindBackoff, StageTable{})
	item := activeItem("v1")
	item.Stage = 2

	next := mustApply(t, p, item, Rated(Hard))

	if next.Stage != 1 {
		t.Fatalf("Stage = %d, want 1", next.Stage)
	}
	want := testNow.Add(time.Duration(1.5 * float64(24*time.Hour)))
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", next.NextReviewAt, want)
	}
}

func TestBackoff_ImpossibleReschedulesSoon(t *testing.T) {
	p, _ := New(KindBackoff, StageTable{})
	item := activeItem("v1")
	item.Stage = 4

	next := mustApply(t, p, item, Rated(Impossible))

	if next.Stage != 0 {
		t.Errorf("Stage = %d, want 0", next.Stage)
	}
	want := testNow.Add(DefaultRetryDelay)
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", next.NextReviewAt, want)
	}
	if next.WrongCount != 1 {
		t.Errorf("WrongCount = %d, want 1", next.WrongCount)
	}
	if next.Streak != 0 {
		t.Errorf("Streak = %d, want 0", next.Streak)
	}
}

func TestBackoff_HardCountsAsCorrect(t *testing.T) {
	p, _ := New(KindBackoff, StageTable{})
	item := activeItem("v1")
	item.Stage = 3
	item.Streak = 2

	next := mustApply(t, p, item, Rated(Hard))

	if next.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", next.CorrectCount)
	}
	if next.Streak != 3 {
		t.Errorf("Streak = %d, want 3", next.Streak)
	}
}

func TestBackoff_RejectsUnknownDifficulty(t *testing.T) {
	p, _ := New(KindBackoff, StageTable{})
	item := activeItem("v1")
	item.Stage = 2

	next, err := p.Apply(item, Outcome{Difficulty: "brutal"}, testNow)
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("err = %v, want ErrInvalidOutcome", err)
	}
	if next != item {
		t.Error("item changed despite invalid outcome")
	}
}

func TestBackoff_LockedAndRetiredAreNoOps(t *testing.T) {
	p, _ := New(KindBackoff, StageTable{})
	for _, status := range []Status{StatusLocked, StatusRetired} {
		item := Item{ID: "v1", Status: status, Stage: 2}
		next, err := p.Apply(item, Rated(Easy), testNow)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s: err = %v, want ErrInvalidTransition", status, err)
		}
		if next != item {
			t.Errorf("%s: item changed", status)
		}
	}
}
