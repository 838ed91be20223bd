package srs

import "time"

// Status is an item's coarse lifecycle position. Policies only ever
// transition active items; Locked and Retired bracket the reviewable range.
type Status string

const (
	StatusLocked  Status = "locked"
	StatusActive  Status = "active"
	StatusRetired Status = "retired"
)

// Track identifies one review dimension of a dual-track item.
type Track string

const (
	TrackMeaning Track = "meaning"
	TrackReading Track = "reading"
)

// Progress is one sub-track's advancement toward the current stage threshold.
type Progress struct {
	Correct int `json:"correct"`
}

// Item holds all scheduling state for a single learnable item. Static
// content (the word, its gloss, its reading) lives in itemgraph; the
// engine only sees scheduling state.
//
// Policy-specific fields are only meaningful under their policy and stay
// at zero values otherwise: Mastery belongs to the fixed-stage policy,
// EaseFactor/Repetition/IntervalDays to SM-2, and the Meaning/Reading
// progress pair to the dual-track policy.
type Item struct {
	ID     string `json:"id"`
	Status Status `json:"status"`

	// Stage is the index into the active stage table. Zero is the floor
	// ("new"); the backoff policy uses it directly as the srs level.
	Stage int `json:"stage"`

	// Lifetime counters, reporting only. Never decremented.
	CorrectCount int `json:"correct_count"`
	WrongCount   int `json:"wrong_count"`

	// Streak is the current run of consecutive correct answers. Persisted
	// alongside every transition rather than derived from the lifetime
	// counters.
	Streak int `json:"streak"`

	LastReviewedAt time.Time `json:"last_reviewed_at"`

	// NextReviewAt zero means due immediately.
	NextReviewAt time.Time `json:"next_review_at"`

	Mastery      int      `json:"mastery"`
	EaseFactor   float64  `json:"ease_factor"`
	Repetition   int      `json:"repetition"`
	IntervalDays int      `json:"interval_days"`
	Meaning      Progress `json:"meaning"`
	Reading      Progress `json:"reading"`
}

// Due reports whether the item is at or past its next review time.
// Locked and retired items are never due.
func (it Item) Due(now time.Time) bool {
	if it.Status != StatusActive {
		return false
	}
	if it.NextReviewAt.IsZero() {
		return true
	}
	return !now.Before(it.NextReviewAt)
}

// OverdueHours returns how many hours past due the item is, or 0 if it
// is not yet due. Used for queue prioritization in stats displays.
func (it Item) OverdueHours(now time.Time) float64 {
	if it.NextReviewAt.IsZero() || now.Before(it.NextReviewAt) {
		return 0
	}
	return now.Sub(it.NextReviewAt).Hours()
}
