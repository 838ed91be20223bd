package srs

import (
	"errors"
	"testing"
	"time"
)

// twoByTwoTable is a small dual-track progression with uniform 2/2
// thresholds, easier to reason about in tests than the default table.
func twoByTwoTable() StageTable {
	return StageTable{
		Stages: []StageDef{
			{Name: "new", Meaning: 2, Reading: 2, Interval: 4 * time.Hour},
			{Name: "s1", Meaning: 2, Reading: 2, Interval: 48 * time.Hour},
			{Name: "s2", Meaning: 2, Reading: 2, Interval: 96 * time.Hour},
		},
		RetryDelay: DefaultRetryDelay,
	}
}

func TestDualTrack_CorrectIncrementsOnlySelectedTrack(t *testing.T) {
	p, _ := New(KindDualTrack, twoByTwoTable())
	item := activeItem("k1")

	next := mustApply(t, p, item, Answered(true).On(TrackMeaning))

	if next.Meaning.Correct != 1 {
		t.Errorf("Meaning.Correct = %d, want 1", next.Meaning.Correct)
	}
	if next.Reading.Correct != 0 {
		t.Errorf("Reading.Correct = %d, want 0", next.Reading.Correct)
	}
	if next.Stage != 0 {
		t.Errorf("Stage = %d, want 0", next.Stage)
	}
	// Still reviewable for the other sub-track at the current cadence.
	want := testNow.Add(4 * time.Hour)
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", next.NextReviewAt, want)
	}
}

func TestDualTrack_AdvanceRequiresBothTracks(t *testing.T) {
	// Stage s1 with 2/2 thresholds, meaning already at 2, reading at 1:
	// one correct reading answer advances the stage and resets both.
	p, _ := New(KindDualTrack, twoByTwoTable())
	item := activeItem("k1")
	item.Stage = 1
	item.Meaning.Correct = 2
	item.Reading.Correct = 1

	next := mustApply(t, p, item, Answered(true).On(TrackReading))

	if next.Stage != 2 {
		t.Fatalf("Stage = %d, want 2", next.Stage)
	}
	if next.Meaning.Correct != 0 || next.Reading.Correct != 0 {
		t.Errorf("counters = %d/%d, want 0/0", next.Meaning.Correct, next.Reading.Correct)
	}
	want := testNow.Add(96 * time.Hour)
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", next.NextReviewAt, want)
	}
}

func TestDualTrack_IncorrectZeroesBothTracks(t *testing.T) {
	// An incorrect reading answer also wipes meaning progress, and the
	// stage drops to the floor no matter how high it was.
	p, _ := New(KindDualTrack, twoByTwoTable())
	item := activeItem("k1")
	item.Stage = 2
	item.Meaning.Correct = 1
	item.Reading.Correct = 1

	next := mustApply(t, p, item, Answered(false).On(TrackReading))

	if next.Stage != 0 {
		t.Errorf("Stage = %d, want 0", next.Stage)
	}
	if next.Meaning.Correct != 0 {
		t.Errorf("Meaning.Correct = %d, want 0", next.Meaning.Correct)
	}
	if next.Reading.Correct != 0 {
		t.Errorf("Reading.Correct = %d, want 0", next.Reading.Correct)
	}
	want := testNow.Add(DefaultRetryDelay)
	if !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", next.NextReviewAt, want)
	}
}

func TestDualTrack_AdvancingPastLastStageRetires(t *testing.T) {
	p, _ := New(KindDualTrack, twoByTwoTable())
	item := activeItem("k1")
	item.Stage = 2
	item.Meaning.Correct = 2
	item.Reading.Correct = 1

	next := mustApply(t, p, item, Answered(true).On(TrackReading))

	if next.Status != StatusRetired {
		t.Fatalf("Status = %s, want retired", next.Status)
	}
	if !next.NextReviewAt.IsZero() {
		t.Errorf("NextReviewAt = %v, want zero", next.NextReviewAt)
	}
}

func TestDualTrack_RetiredIsTerminal(t *testing.T) {
	p, _ := New(KindDualTrack, twoByTwoTable())
	item := Item{ID: "k1", Status: StatusRetired, Stage: 3, CorrectCount: 12}

	for _, o := range []Outcome{
		Answered(true).On(TrackMeaning),
		Answered(false).On(TrackReading),
	} {
		next, err := p.Apply(item, o, testNow)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("err = %v, want ErrInvalidTransition", err)
		}
		if next != item {
			t.Error("retired item changed")
		}
	}
}

func TestDualTrack_RequiresTrack(t *testing.T) {
	p, _ := New(KindDualTrack, twoByTwoTable())
	item := activeItem("k1")

	next, err := p.Apply(item, Answered(true), testNow)
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("err = %v, want ErrInvalidOutcome", err)
	}
	if next != item {
		t.Error("item changed despite missing track")
	}
}

func TestDualTrack_OutstandingTracks(t *testing.T) {
	p := DualTrack{table: twoByTwoTable()}

	item := activeItem("k1")
	got := p.OutstandingTracks(item)
	if len(got) != 2 {
		t.Fatalf("outstanding = %v, want both tracks", got)
	}

	item.Meaning.Correct = 2
	got = p.OutstandingTracks(item)
	if len(got) != 1 || got[0] != TrackReading {
		t.Errorf("outstanding = %v, want [reading]", got)
	}

	retired := Item{ID: "k2", Status: StatusRetired}
	if got := p.OutstandingTracks(retired); got != nil {
		t.Errorf("outstanding for retired = %v, want nil", got)
	}
}

func TestDualTrack_CountersMonotonicAcrossSequences(t *testing.T) {
	p, _ := New(KindDualTrack, twoByTwoTable())
	item := activeItem("k1")

	outcomes := []Outcome{
		Answered(true).On(TrackMeaning),
		Answered(true).On(TrackReading),
		Answered(false).On(TrackMeaning),
		Answered(true).On(TrackReading),
		Answered(false).On(TrackReading),
		Answered(true).On(TrackMeaning),
	}

	prevCorrect, prevWrong := 0, 0
	for i, o := range outcomes {
		next, err := p.Apply(item, o, testNow)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if next.CorrectCount < prevCorrect || next.WrongCount < prevWrong {
			t.Fatalf("step %d: lifetime counters regressed", i)
		}
		prevCorrect, prevWrong = next.CorrectCount, next.WrongCount
		item = next
	}
}

func TestDualTrack_StageOutsideTableRejected(t *testing.T) {
	// A collection reviewed under a longer table can carry a persisted
	// stage past the end of a shorter custom one. Those items must be
	// rejected, never indexed past the table.
	p, _ := New(KindDualTrack, twoByTwoTable())

	for _, o := range []Outcome{
		Answered(true).On(TrackMeaning),
		Answered(false).On(TrackReading),
	} {
		item := activeItem("k1")
		item.Stage = 5

		next, err := p.Apply(item, o, testNow)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("correct=%v: err = %v, want ErrInvalidTransition", o.Correct, err)
		}
		if next != item {
			t.Errorf("correct=%v: item changed on rejected transition", o.Correct)
		}
	}
}
