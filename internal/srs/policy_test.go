package srs

import (
	"errors"
	"testing"
	"time"
)

func TestNew_SelectsEveryKind(t *testing.T) {
	for _, kind := range Kinds() {
		p, err := New(kind, StageTable{})
		if err != nil {
			t.Fatalf("New(%s): %v", kind, err)
		}
		if p.Kind() != kind {
			t.Errorf("Kind() = %s, want %s", p.Kind(), kind)
		}
	}
}

func TestNew_RejectsUnknownKind(t *testing.T) {
	_, err := New("leitner", StageTable{})
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("err = %v, want ErrUnknownPolicy", err)
	}
}

func TestLearnedFloor(t *testing.T) {
	tests := []struct {
		name string
		item Item
		kind Kind
		want bool
	}{
		{"locked never learned", Item{Status: StatusLocked, Stage: 3}, KindDualTrack, false},
		{"retired always learned", Item{Status: StatusRetired}, KindDualTrack, true},
		{"dual-track below floor", Item{Status: StatusActive, Stage: 0}, KindDualTrack, false},
		{"dual-track at floor", Item{Status: StatusActive, Stage: 1}, KindDualTrack, true},
		{"fixed-stage below floor", Item{Status: StatusActive, Mastery: 0}, KindFixedStage, false},
		{"fixed-stage at floor", Item{Status: StatusActive, Mastery: 25}, KindFixedStage, true},
		{"sm2 below floor", Item{Status: StatusActive, Repetition: 0}, KindSM2, false},
		{"sm2 at floor", Item{Status: StatusActive, Repetition: 1}, KindSM2, true},
		{"backoff below floor", Item{Status: StatusActive, Stage: 0}, KindBackoff, false},
		{"backoff at floor", Item{Status: StatusActive, Stage: 1}, KindBackoff, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LearnedFloor(tt.item, tt.kind); got != tt.want {
				t.Errorf("LearnedFloor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLifetimeCountersMonotonic_AllPolicies(t *testing.T) {
	// Outcomes chosen to exercise advancement, regression, and failure
	// paths under every policy.
	outcomes := []Outcome{
		Rated(Easy).On(TrackMeaning),
		Rated(Hard).On(TrackReading),
		Rated(Impossible).On(TrackMeaning),
		Rated(Medium).On(TrackReading),
		Rated(Impossible).On(TrackReading),
		Rated(Easy).On(TrackMeaning),
	}

	for _, kind := range Kinds() {
		p, err := New(kind, StageTable{})
		if err != nil {
			t.Fatalf("New(%s): %v", kind, err)
		}
		item := activeItem("x1")
		prevCorrect, prevWrong := 0, 0
		for i, o := range outcomes {
			next, err := p.Apply(item, o, testNow)
			if err != nil {
				t.Fatalf("%s step %d: %v", kind, i, err)
			}
			if next.CorrectCount < prevCorrect {
				t.Fatalf("%s step %d: CorrectCount regressed", kind, i)
			}
			if next.WrongCount < prevWrong {
				t.Fatalf("%s step %d: WrongCount regressed", kind, i)
			}
			prevCorrect, prevWrong = next.CorrectCount, next.WrongCount
			item = next
		}
	}
}

func TestDue(t *testing.T) {
	earlier := testNow.Add(-time.Hour)
	later := testNow.Add(time.Hour)

	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"unset next review is due", Item{Status: StatusActive}, true},
		{"past next review is due", Item{Status: StatusActive, NextReviewAt: earlier}, true},
		{"exact next review is due", Item{Status: StatusActive, NextReviewAt: testNow}, true},
		{"future next review is not due", Item{Status: StatusActive, NextReviewAt: later}, false},
		{"locked is never due", Item{Status: StatusLocked}, false},
		{"retired is never due", Item{Status: StatusRetired, NextReviewAt: earlier}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Due(testNow); got != tt.want {
				t.Errorf("Due = %v, want %v", got, tt.want)
			}
		})
	}
}
