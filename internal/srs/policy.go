package srs

import (
	"fmt"
	"time"
)

// Kind names one of the scheduling algorithms.
type Kind string

const (
	KindBackoff    Kind = "backoff"
	KindFixedStage Kind = "fixed-stage"
	KindSM2        Kind = "sm2"
	KindDualTrack  Kind = "dual-track"
)

// Kinds returns all policy kinds in display order.
func Kinds() []Kind {
	return []Kind{KindBackoff, KindFixedStage, KindSM2, KindDualTrack}
}

// Policy decides how a review outcome moves an item through its stage
// table. Implementations are pure: Apply performs no I/O and either
// returns the fully updated item or the input unchanged with an error.
type Policy interface {
	Kind() Kind

	// Apply computes the item's state after one review outcome.
	// Transitions are all-or-nothing: on error the returned item is the
	// input, bit for bit.
	Apply(item Item, o Outcome, now time.Time) (Item, error)
}

// New selects the policy implementation for the given kind, parameterized
// by the table. When table is the zero value, the kind's default table is
// used.
func New(kind Kind, table StageTable) (Policy, error) {
	if table.RetryDelay == 0 {
		table = DefaultTable(kind)
	}
	switch kind {
	case KindBackoff:
		return Backoff{table: table}, nil
	case KindFixedStage:
		return FixedStage{table: table}, nil
	case KindSM2:
		return SM2{table: table}, nil
	case KindDualTrack:
		return DualTrack{table: table}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, kind)
	}
}

// DefaultTable returns the built-in stage table for a policy kind.
func DefaultTable(kind Kind) StageTable {
	switch kind {
	case KindFixedStage:
		return FixedStageTable()
	case KindDualTrack:
		return DualTrackTable()
	case KindSM2:
		return StageTable{RetryDelay: DefaultRetryDelay}
	default:
		return BackoffTable()
	}
}

// guard rejects reviews of items that accept none. Shared by every policy.
func guard(item Item) error {
	if item.Status == StatusLocked || item.Status == StatusRetired {
		return fmt.Errorf("%w: item %s is %s", ErrInvalidTransition, item.ID, item.Status)
	}
	return nil
}

// record updates the lifetime counters, streak, and last-review time.
// Called after a transition is known to be valid, never before.
func record(it *Item, correct bool, now time.Time) {
	if correct {
		it.CorrectCount++
		it.Streak++
	} else {
		it.WrongCount++
		it.Streak = 0
	}
	it.LastReviewedAt = now
}

// LearnedFloor reports whether the item has reached the stage at which
// level-gating counts it as learned under the given policy kind.
func LearnedFloor(item Item, kind Kind) bool {
	if item.Status == StatusRetired {
		return true
	}
	if item.Status != StatusActive {
		return false
	}
	switch kind {
	case KindFixedStage:
		return item.Mastery >= 25
	case KindSM2:
		return item.Repetition >= learnedFloorStage
	default:
		return item.Stage >= learnedFloorStage
	}
}
