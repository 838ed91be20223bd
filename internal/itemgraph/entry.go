package itemgraph

// ContentKind classifies what a learnable item asks the learner to recall.
type ContentKind string

const (
	KindVocabulary ContentKind = "vocabulary"
	KindCloze      ContentKind = "cloze"
	KindCharacter  ContentKind = "character"
)

// AllContentKinds returns the content kinds in display order.
func AllContentKinds() []ContentKind {
	return []ContentKind{KindVocabulary, KindCloze, KindCharacter}
}

// Entry is the static content of a learnable item. Scheduling state lives
// in the srs package; an Entry never changes during review.
type Entry struct {
	ID   string
	Kind ContentKind

	// Prompt is what the learner is shown: the word, the sentence with a
	// blank, or the bare character.
	Prompt  string
	Meaning string

	// Reading is the phonetic answer for the reading sub-track. Empty for
	// entries reviewed on the meaning track alone.
	Reading string

	// Level groups entries into unlock tiers. Minimum 1.
	Level int

	// Prerequisites lists entry IDs that must be unlocked before this
	// entry can unlock. Distinct from level-gating: prerequisites need
	// only be out of the locked state, not learned.
	Prerequisites []string
}
