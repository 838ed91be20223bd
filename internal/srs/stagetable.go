package srs

import "time"

// StageDef describes one position in a progression.
type StageDef struct {
	Name string

	// Mastery is the minimum mastery percent for this stage
	// (fixed-stage policy only).
	Mastery int

	// Meaning and Reading are the correct answers required on each
	// sub-track before the item advances past this stage
	// (dual-track policy only).
	Meaning int
	Reading int

	// Interval is the time until the next review while the item holds
	// this stage. Zero on the last dual-track stage means the stage is
	// terminal: advancing past it retires the item.
	Interval time.Duration
}

// StageTable is the progression an item moves through. It is configuration,
// not state: every policy is parameterized by a table rather than
// hard-coding one, so tables are swappable per collection.
type StageTable struct {
	// Stages is the ordered progression for the fixed-stage and
	// dual-track policies. Unused by backoff and SM-2.
	Stages []StageDef

	// Increment is the mastery percent added per correct answer and
	// subtracted per incorrect answer (fixed-stage policy).
	Increment int

	// BaseIntervals maps each difficulty bucket to the backoff policy's
	// base interval.
	BaseIntervals map[Difficulty]time.Duration

	// Growth is the backoff multiplier applied per srs level.
	Growth float64

	// RetryDelay is how soon an item comes back after an incorrect
	// answer, for every policy. Never zero in a valid table.
	RetryDelay time.Duration
}

// learnedFloorStage is the stage index at which level-gating treats an
// item as learned.
const learnedFloorStage = 1

// DefaultRetryDelay is the reschedule delay after an incorrect answer.
const DefaultRetryDelay = time.Hour

// BackoffTable returns the exponential-backoff configuration: base
// intervals of 4/2/1 days for easy/medium/hard and a 1.5x multiplier
// per srs level.
func BackoffTable() StageTable {
	return StageTable{
		BaseIntervals: map[Difficulty]time.Duration{
			Easy:       4 * 24 * time.Hour,
			Medium:     2 * 24 * time.Hour,
			Hard:       24 * time.Hour,
			Impossible: 0,
		},
		Growth:     1.5,
		RetryDelay: DefaultRetryDelay,
	}
}

// FixedStageTable returns the five-stage mastery-percent configuration.
// The first stage's one-hour interval keeps freshly failed or brand-new
// items cycling within a session.
func FixedStageTable() StageTable {
	return StageTable{
		Stages: []StageDef{
			{Name: "unseen", Mastery: 0, Interval: time.Hour},
			{Name: "apprentice", Mastery: 25, Interval: 24 * time.Hour},
			{Name: "familiar", Mastery: 50, Interval: 10 * 24 * time.Hour},
			{Name: "proficient", Mastery: 75, Interval: 30 * 24 * time.Hour},
			{Name: "mastered", Mastery: 100, Interval: 180 * 24 * time.Hour},
		},
		Increment:  25,
		RetryDelay: DefaultRetryDelay,
	}
}

// DualTrackTable returns the dual-track progression used for logographic
// items: each stage requires a configurable number of correct meaning and
// reading answers, and advancing past the last stage retires the item.
func DualTrackTable() StageTable {
	return StageTable{
		Stages: []StageDef{
			{Name: "new", Meaning: 2, Reading: 2, Interval: 8 * time.Hour},
			{Name: "apprentice", Meaning: 2, Reading: 2, Interval: 3 * 24 * time.Hour},
			{Name: "guru", Meaning: 3, Reading: 3, Interval: 14 * 24 * time.Hour},
			{Name: "master", Meaning: 3, Reading: 3, Interval: 60 * 24 * time.Hour},
		},
		RetryDelay: DefaultRetryDelay,
	}
}

// stageForMastery returns the index of the highest stage whose mastery
// threshold is at or below the given percent.
func (t StageTable) stageForMastery(mastery int) int {
	stage := 0
	for i, s := range t.Stages {
		if mastery >= s.Mastery {
			stage = i
		}
	}
	return stage
}

// StageName returns the display name for a stage index, or the empty
// string when the table has no named stages.
func (t StageTable) StageName(stage int) string {
	if stage < 0 || stage >= len(t.Stages) {
		return ""
	}
	return t.Stages[stage].Name
}
