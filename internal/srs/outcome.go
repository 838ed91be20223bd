package srs

// Difficulty is the learner's self-assessment of a review answer.
// Impossible doubles as "incorrect": the two collapse together for every
// policy that grades by difficulty bucket.
type Difficulty string

const (
	Easy       Difficulty = "easy"
	Medium     Difficulty = "medium"
	Hard       Difficulty = "hard"
	Impossible Difficulty = "impossible"
)

// Outcome is the quality signal for one review answer. Construct with
// Answered, Rated, or Graded depending on how the answer was scored; the
// constructors fill every field consistently so each policy can read the
// representation it prefers.
type Outcome struct {
	Difficulty Difficulty
	// Quality is the SM-2 ordinal grade in [0,5]; below 3 is incorrect.
	Quality int
	Correct bool
	// Track selects the sub-track for dual-track items. Empty for
	// single-track policies.
	Track Track
}

// Answered builds a plain boolean outcome.
func Answered(correct bool) Outcome {
	if correct {
		return Outcome{Difficulty: Medium, Quality: 4, Correct: true}
	}
	return Outcome{Difficulty: Impossible, Quality: 1, Correct: false}
}

// Rated builds an outcome from a difficulty bucket.
func Rated(d Difficulty) Outcome {
	return Outcome{Difficulty: d, Quality: qualityFor(d), Correct: d != Impossible}
}

// Graded builds an outcome from an SM-2 quality grade. Values outside
// [0,5] are preserved and rejected by Apply with ErrInvalidOutcome.
func Graded(quality int) Outcome {
	return Outcome{Difficulty: difficultyFor(quality), Quality: quality, Correct: quality >= 3}
}

// On returns a copy of the outcome bound to the given sub-track.
func (o Outcome) On(t Track) Outcome {
	o.Track = t
	return o
}

func qualityFor(d Difficulty) int {
	switch d {
	case Easy:
		return 5
	case Medium:
		return 4
	case Hard:
		return 3
	default:
		return 1
	}
}

func difficultyFor(quality int) Difficulty {
	switch {
	case quality >= 5:
		return Easy
	case quality == 4:
		return Medium
	case quality == 3:
		return Hard
	default:
		return Impossible
	}
}

// validDifficulty reports whether d is one of the four accepted buckets.
func validDifficulty(d Difficulty) bool {
	switch d {
	case Easy, Medium, Hard, Impossible:
		return true
	}
	return false
}

// validQuality reports whether q is in the SM-2 domain [0,5].
func validQuality(q int) bool {
	return q >= 0 && q <= 5
}
