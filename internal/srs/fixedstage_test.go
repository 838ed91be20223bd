package srs

import (
	"testing"
	"time"
)

func TestFixedStage_FirstCorrect(t *testing.T) {
	// {mastery:0, stage:0} + correct -> {mastery:25, stage:1}, next in 1 day.
	p, _ := New(KindFixedStage, StageTable{})
	item := activeItem("w1")

	next := mustApply(t, p, item, Answered(true))

	if next.Mastery != 25 {
		t.Errorf("Mastery = %d, want 25", next.Mastery)
	}
	if next.Stage != 1 {
		t.Errorf("Stage = %d, want 1", next.Stage)
	}
	want := testNow.Add(24 * time.Hour)
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", next.NextReviewAt, want)
	}
}

func TestFixedStage_IncorrectForcesFloorStage(t *testing.T) {
	// {mastery:50, stage:2} + incorrect -> {mastery:25, stage:0}.
	p, _ := New(KindFixedStage, StageTable{})
	item := activeItem("w1")
	item.Mastery = 50
	item.Stage = 2

	next := mustApply(t, p, item, Answered(false))

	if next.Mastery != 25 {
		t.Errorf("Mastery = %d, want 25", next.Mastery)
	}
	if next.Stage != 0 {
		t.Errorf("Stage = %d, want 0", next.Stage)
	}
	want := testNow.Add(DefaultRetryDelay)
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", next.NextReviewAt, want)
	}
}

func TestFixedStage_MasteryCapsAtHundred(t *testing.T) {
	p, _ := New(KindFixedStage, StageTable{})
	item := activeItem("w1")
	item.Mastery = 100
	item.Stage = 4

	next := mustApply(t, p, item, Answered(true))

	if next.Mastery != 100 {
		t.Errorf("Mastery = %d, want 100", next.Mastery)
	}
	if next.Stage != 4 {
		t.Errorf("Stage = %d, want 4", next.Stage)
	}
	want := testNow.Add(180 * 24 * time.Hour)
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", next.NextReviewAt, want)
	}
}

func TestFixedStage_MasteryFloorsAtZero(t *testing.T) {
	p, _ := New(KindFixedStage, StageTable{})
	item := activeItem("w1")

	next := mustApply(t, p, item, Answered(false))

	if next.Mastery != 0 {
		t.Errorf("Mastery = %d, want 0", next.Mastery)
	}
}

func TestFixedStage_StageRederivedAfterRecovery(t *testing.T) {
	// A failed item at mastery 25 sits at stage 0; the next correct answer
	// lifts mastery to 50 and the stage jumps straight to 2.
	p, _ := New(KindFixedStage, StageTable{})
	item := activeItem("w1")
	item.Mastery = 25
	item.Stage = 0

	next := mustApply(t, p, item, Answered(true))

	if next.Mastery != 50 {
		t.Errorf("Mastery = %d, want 50", next.Mastery)
	}
	if next.Stage != 2 {
		t.Errorf("Stage = %d, want 2", next.Stage)
	}
}

func TestFixedStage_UnseenStageCyclesWithinHour(t *testing.T) {
	// A brand-new item that fails immediately comes back after the retry
	// delay, not a day later.
	p, _ := New(KindFixedStage, StageTable{})
	item := activeItem("w1")

	next := mustApply(t, p, item, Answered(false))

	if got := next.NextReviewAt.Sub(testNow); got != time.Hour {
		t.Errorf("reschedule delay = %v, want 1h", got)
	}
}
