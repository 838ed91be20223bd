package srs

import (
	"errors"
	"math"
	"testing"
)

func TestSM2_FirstRepetitions(t *testing.T) {
	p, _ := New(KindSM2, StageTable{})
	item := activeItem("c1")

	first := mustApply(t, p, item, Graded(4))
	if first.Repetition != 1 {
		t.Fatalf("Repetition = %d, want 1", first.Repetition)
	}
	if first.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", first.IntervalDays)
	}

	second := mustApply(t, p, first, Graded(4))
	if second.Repetition != 2 {
		t.Fatalf("Repetition = %d, want 2", second.Repetition)
	}
	if second.IntervalDays != 6 {
		t.Errorf("IntervalDays = %d, want 6", second.IntervalDays)
	}

	third := mustApply(t, p, second, Graded(4))
	wantInterval := int(math.Round(6 * third.EaseFactor))
	if third.IntervalDays != wantInterval {
		t.Errorf("IntervalDays = %d, want %d", third.IntervalDays, wantInterval)
	}
	wantNext := testNow.AddDate(0, 0, wantInterval)
	if !third.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", third.NextReviewAt, wantNext)
	}
}

func TestSM2_EaseUpdate(t *testing.T) {
	tests := []struct {
		quality  int
		wantEase float64
	}{
		{5, 2.6},
		{4, 2.5},
		{3, 2.36},
		{2, 2.18},
		{0, 1.7},
	}

	p, _ := New(KindSM2, StageTable{})
	for _, tt := range tests {
		item := activeItem("c1")
		item.EaseFactor = 2.5
		next := mustApply(t, p, item, Graded(tt.quality))
		if math.Abs(next.EaseFactor-tt.wantEase) > 1e-9 {
			t.Errorf("quality %d: EaseFactor = %v, want %v", tt.quality, next.EaseFactor, tt.wantEase)
		}
	}
}

func TestSM2_EaseNeverBelowFloor(t *testing.T) {
	p, _ := New(KindSM2, StageTable{})
	item := activeItem("c1")
	item.EaseFactor = MinEaseFactor

	next := mustApply(t, p, item, Graded(0))
	if next.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", next.EaseFactor, MinEaseFactor)
	}
}

func TestSM2_FailureResetsRepetition(t *testing.T) {
	p, _ := New(KindSM2, StageTable{})
	item := activeItem("c1")
	item.Repetition = 5
	item.IntervalDays = 42
	item.EaseFactor = 2.0
	item.Streak = 5

	next := mustApply(t, p, item, Graded(2))

	if next.Repetition != 0 {
		t.Errorf("Repetition = %d, want 0", next.Repetition)
	}
	if next.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", next.IntervalDays)
	}
	if next.Streak != 0 {
		t.Errorf("Streak = %d, want 0", next.Streak)
	}
	// Failed items come back within the retry delay, not a full day out.
	want := testNow.Add(DefaultRetryDelay)
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", next.NextReviewAt, want)
	}
}

func TestSM2_RejectsOutOfRangeQuality(t *testing.T) {
	p, _ := New(KindSM2, StageTable{})
	item := activeItem("c1")
	item.Repetition = 3
	item.EaseFactor = 2.2

	for _, q := range []int{-1, 6, 42} {
		next, err := p.Apply(item, Graded(q), testNow)
		if !errors.Is(err, ErrInvalidOutcome) {
			t.Errorf("quality %d: err = %v, want ErrInvalidOutcome", q, err)
		}
		if next != item {
			t.Errorf("quality %d: item changed despite invalid outcome", q)
		}
	}
}

func TestSM2_DefaultsEaseOnFirstReview(t *testing.T) {
	p, _ := New(KindSM2, StageTable{})
	item := activeItem("c1")

	next := mustApply(t, p, item, Graded(5))
	if next.EaseFactor != InitialEaseFactor+0.1 {
		t.Errorf("EaseFactor = %v, want %v", next.EaseFactor, InitialEaseFactor+0.1)
	}
}
