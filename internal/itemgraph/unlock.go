package itemgraph

import (
	"sort"

	"github.com/mizutori/kioku/internal/srs"
)

// Unlockable computes the set of locked entries that may leave the locked
// state, given the scheduling state of every item under the active policy
// kind. Pure: the same snapshot always yields the same set.
//
// An entry at level 1 is gated only by its prerequisites. An entry at
// level L > 1 additionally requires every level L-1 entry to have reached
// the policy's learned floor. Prerequisites themselves need only be out
// of the locked state, not learned; the asymmetry with level-gating is
// deliberate.
//
// Entries whose prerequisite list references a missing ID (a construction
// warning) are never returned.
func (g *Graph) Unlockable(states map[string]srs.Item, kind srs.Kind) []string {
	flagged := make(map[string]bool, len(g.warnings))
	for _, w := range g.warnings {
		flagged[w.EntryID] = true
	}

	levelLearned := make(map[int]bool, g.maxLevel)
	for level := 1; level <= g.maxLevel; level++ {
		levelLearned[level] = g.levelLearned(level, states, kind)
	}

	var unlockable []string
	for i := range g.entries {
		e := g.entries[i]
		state, ok := states[e.ID]
		if !ok || state.Status != srs.StatusLocked {
			continue
		}
		if flagged[e.ID] {
			continue
		}
		if e.Level > 1 && !levelLearned[e.Level-1] {
			continue
		}
		if !g.prerequisitesUnlocked(e, states) {
			continue
		}
		unlockable = append(unlockable, e.ID)
	}
	sort.Strings(unlockable)
	return unlockable
}

// levelLearned reports whether every entry at the given level has reached
// the policy's learned floor. Entries without a state count as unlearned.
func (g *Graph) levelLearned(level int, states map[string]srs.Item, kind srs.Kind) bool {
	for _, e := range g.byLevel[level] {
		state, ok := states[e.ID]
		if !ok || !srs.LearnedFloor(state, kind) {
			return false
		}
	}
	return true
}

// prerequisitesUnlocked reports whether every prerequisite of e is out of
// the locked state.
func (g *Graph) prerequisitesUnlocked(e Entry, states map[string]srs.Item) bool {
	for _, prereqID := range e.Prerequisites {
		state, ok := states[prereqID]
		if !ok || state.Status == srs.StatusLocked {
			return false
		}
	}
	return true
}

// Unlock transitions a locked scheduling state to active. It is the only
// path out of the locked state; the item becomes due immediately.
func Unlock(item srs.Item) srs.Item {
	if item.Status != srs.StatusLocked {
		return item
	}
	item.Status = srs.StatusActive
	return item
}
