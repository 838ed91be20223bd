package srs

import "time"

// FixedStage implements the mastery-percent policy: a scalar mastery
// value moves in fixed increments and the active stage is the highest
// table entry whose threshold the mastery meets.
type FixedStage struct {
	table StageTable
}

func (FixedStage) Kind() Kind { return KindFixedStage }

// Apply adds the table increment on a correct answer (capped at 100) and
// re-derives the stage from the new mastery. An incorrect answer subtracts
// the increment (floored at 0) and forces the stage back to index 0
// regardless of the remaining mastery; the stage is only re-derived on the
// next correct answer.
func (p FixedStage) Apply(item Item, o Outcome, now time.Time) (Item, error) {
	if err := guard(item); err != nil {
		return item, err
	}
	if !validDifficulty(o.Difficulty) {
		return item, ErrInvalidOutcome
	}

	next := item
	correct := o.Difficulty != Impossible

	if correct {
		next.Mastery += p.table.Increment
		if next.Mastery > 100 {
			next.Mastery = 100
		}
		next.Stage = p.table.stageForMastery(next.Mastery)
	} else {
		next.Mastery -= p.table.Increment
		if next.Mastery < 0 {
			next.Mastery = 0
		}
		next.Stage = 0
	}

	record(&next, correct, now)

	if !correct {
		next.NextReviewAt = now.Add(p.table.RetryDelay)
		return next, nil
	}
	next.NextReviewAt = now.Add(p.table.Stages[next.Stage].Interval)
	return next, nil
}
