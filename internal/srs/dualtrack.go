package srs

import (
	"fmt"
	"time"
)

// DualTrack implements the dependency-gated dual-counter policy used for
// logographic items: every stage requires both the meaning and the
// reading sub-track to reach its threshold before the item advances, and
// advancing past the last stage retires the item for good.
type DualTrack struct {
	table StageTable
}

func (DualTrack) Kind() Kind { return KindDualTrack }

// Apply grades one sub-track answer. A correct answer increments only the
// selected sub-track; the stage advances when both sub-tracks meet the
// current stage's thresholds, resetting both counters. An incorrect
// answer on either sub-track zeroes both counters and forces the item
// back to the floor stage.
func (p DualTrack) Apply(item Item, o Outcome, now time.Time) (Item, error) {
	if err := guard(item); err != nil {
		return item, err
	}
	if o.Track != TrackMeaning && o.Track != TrackReading {
		return item, ErrInvalidOutcome
	}
	if !validDifficulty(o.Difficulty) {
		return item, ErrInvalidOutcome
	}
	// A persisted stage can exceed a shorter table when the collection is
	// rerun against a smaller custom progression. Reject rather than index
	// past the end.
	if item.Stage < 0 || item.Stage >= len(p.table.Stages) {
		return item, fmt.Errorf("%w: item %s stage %d outside table of %d stage(s)",
			ErrInvalidTransition, item.ID, item.Stage, len(p.table.Stages))
	}

	next := item

	if !o.Correct {
		next.Meaning.Correct = 0
		next.Reading.Correct = 0
		next.Stage = 0
		record(&next, false, now)
		next.NextReviewAt = now.Add(p.table.RetryDelay)
		return next, nil
	}

	if o.Track == TrackMeaning {
		next.Meaning.Correct++
	} else {
		next.Reading.Correct++
	}
	record(&next, true, now)

	stage := p.table.Stages[next.Stage]
	if next.Meaning.Correct >= stage.Meaning && next.Reading.Correct >= stage.Reading {
		next.Stage++
		next.Meaning.Correct = 0
		next.Reading.Correct = 0

		if next.Stage >= len(p.table.Stages) {
			// Terminal: never reviewed again.
			next.Status = StatusRetired
			next.Stage = len(p.table.Stages)
			next.NextReviewAt = time.Time{}
			return next, nil
		}

		next.NextReviewAt = now.Add(p.table.Stages[next.Stage].Interval)
		return next, nil
	}

	// Not yet both satisfied: the item stays reviewable for the other
	// sub-track at the current stage's cadence.
	next.NextReviewAt = now.Add(stage.Interval)
	return next, nil
}

// OutstandingTracks returns the sub-tracks still below the current
// stage's threshold. Both tracks are outstanding immediately after a
// stage advance (counters reset to zero). Retired and locked items have
// no outstanding tracks.
func (p DualTrack) OutstandingTracks(item Item) []Track {
	if item.Status != StatusActive || item.Stage >= len(p.table.Stages) {
		return nil
	}
	stage := p.table.Stages[item.Stage]
	var tracks []Track
	if item.Meaning.Correct < stage.Meaning {
		tracks = append(tracks, TrackMeaning)
	}
	if item.Reading.Correct < stage.Reading {
		tracks = append(tracks, TrackReading)
	}
	return tracks
}
