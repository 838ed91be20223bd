package srs

import (
	"math"
	"time"
)

// MinEaseFactor is the SM-2 ease floor.
const MinEaseFactor = 1.3

// InitialEaseFactor is the ease assigned to an item on its first review.
const InitialEaseFactor = 2.5

// SM2 implements the SuperMemo-2 variant: an ease factor adjusted by the
// ordinal quality grade drives geometrically growing day intervals.
type SM2 struct {
	table StageTable
}

func (SM2) Kind() Kind { return KindSM2 }

// Apply grades one repetition with quality in [0,5]. Quality below 3
// resets the repetition count to 0 and the interval to 1 day, with the
// item rescheduled after the retry delay. Otherwise the interval is 1 day
// for the first repetition, 6 for the second, and round(previous * ease)
// after that. The ease factor is updated on every grade and never drops
// below MinEaseFactor.
func (p SM2) Apply(item Item, o Outcome, now time.Time) (Item, error) {
	if err := guard(item); err != nil {
		return item, err
	}
	if !validQuality(o.Quality) {
		return item, ErrInvalidOutcome
	}

	next := item
	if next.EaseFactor == 0 {
		next.EaseFactor = InitialEaseFactor
	}

	q := float64(o.Quality)
	next.EaseFactor += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if next.EaseFactor < MinEaseFactor {
		next.EaseFactor = MinEaseFactor
	}

	if o.Quality < 3 {
		next.Repetition = 0
		next.IntervalDays = 1
		next.Stage = 0
		record(&next, false, now)
		next.NextReviewAt = now.Add(p.table.RetryDelay)
		return next, nil
	}

	next.Repetition++
	switch next.Repetition {
	case 1:
		next.IntervalDays = 1
	case 2:
		next.IntervalDays = 6
	default:
		next.IntervalDays = int(math.Round(float64(next.IntervalDays) * next.EaseFactor))
	}
	next.Stage = next.Repetition

	record(&next, true, now)
	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	return next, nil
}
