package srs

import (
	"math"
	"time"
)

// Backoff implements the exponential-backoff policy: an integer srs level
// moves with the difficulty bucket and the interval grows geometrically
// with the level.
type Backoff struct {
	table StageTable
}

func (Backoff) Kind() Kind { return KindBackoff }

// Apply moves the srs level by +2 (easy), +1 (medium), -1 floored at 0
// (hard), or resets it to 0 (impossible), then schedules the next review
// at baseInterval(difficulty) scaled by Growth^level using the new level.
func (p Backoff) Apply(item Item, o Outcome, now time.Time) (Item, error) {
	if err := guard(item); err != nil {
		return item, err
	}
	if !validDifficulty(o.Difficulty) {
		return item, ErrInvalidOutcome
	}

	next := item
	switch o.Difficulty {
	case Easy:
		next.Stage += 2
	case Medium:
		next.Stage++
	case Hard:
		next.Stage--
		if next.Stage < 0 {
			next.Stage = 0
		}
	case Impossible:
		next.Stage = 0
	}

	record(&next, o.Difficulty != Impossible, now)

	if o.Difficulty == Impossible {
		next.NextReviewAt = now.Add(p.table.RetryDelay)
		return next, nil
	}

	base := p.table.BaseIntervals[o.Difficulty]
	scale := math.Pow(p.table.Growth, float64(next.Stage))
	next.NextReviewAt = now.Add(time.Duration(float64(base) * scale))
	return next, nil
}
