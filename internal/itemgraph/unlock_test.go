package itemgraph

import (
	"slices"
	"testing"

	"github.com/mizutori/kioku/internal/srs"
)

func locked(id string) srs.Item {
	return srs.Item{ID: id, Status: srs.StatusLocked}
}

func active(id string, stage int) srs.Item {
	return srs.Item{ID: id, Status: srs.StatusActive, Stage: stage}
}

func TestUnlockable_LevelOneWithoutPrerequisites(t *testing.T) {
	g, err := New([]Entry{entry("a", 1), entry("b", 1)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	states := map[string]srs.Item{
		"a": locked("a"),
		"b": active("b", 0),
	}

	got := g.Unlockable(states, srs.KindDualTrack)
	if !slices.Equal(got, []string{"a"}) {
		t.Errorf("Unlockable = %v, want [a]", got)
	}
}

func TestUnlockable_LevelGateRequiresPreviousLevelLearned(t *testing.T) {
	g, err := New([]Entry{
		entry("r1", 1),
		entry("r2", 1),
		entry("k1", 2),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// r2 is active but below the learned floor: level 2 stays gated.
	states := map[string]srs.Item{
		"r1": active("r1", 1),
		"r2": active("r2", 0),
		"k1": locked("k1"),
	}
	if got := g.Unlockable(states, srs.KindDualTrack); len(got) != 0 {
		t.Errorf("Unlockable = %v, want empty", got)
	}

	// Once every level-1 entry reaches the floor, k1 unlocks.
	states["r2"] = active("r2", 1)
	got := g.Unlockable(states, srs.KindDualTrack)
	if !slices.Equal(got, []string{"k1"}) {
		t.Errorf("Unlockable = %v, want [k1]", got)
	}
}

func TestUnlockable_PrerequisiteMustBeUnlockedNotLearned(t *testing.T) {
	// k at level 2 with prerequisites r1 and r2, both also level 2.
	// Every level-1 entry is at the learned floor, so level-gating is
	// satisfied; r1 still being locked is what blocks k. Once r1 is
	// merely unlocked (not learned), k becomes unlockable.
	g, err := New([]Entry{
		entry("base", 1),
		entry("r1", 2),
		entry("r2", 2),
		entry("k", 2, "r1", "r2"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	states := map[string]srs.Item{
		"base": active("base", 1),
		"r1":   locked("r1"),
		"r2":   active("r2", 0),
		"k":    locked("k"),
	}

	got := g.Unlockable(states, srs.KindDualTrack)
	if slices.Contains(got, "k") {
		t.Error("k unlockable while prerequisite r1 is locked")
	}
	if !slices.Contains(got, "r1") {
		t.Errorf("Unlockable = %v, want r1 included", got)
	}

	states["r1"] = active("r1", 0) // unlocked, still unlearned
	got = g.Unlockable(states, srs.KindDualTrack)
	if !slices.Contains(got, "k") {
		t.Errorf("Unlockable = %v, want k included", got)
	}
}

func TestUnlockable_MissingPrerequisiteExcludesEntry(t *testing.T) {
	g, err := New([]Entry{
		entry("a", 1),
		entry("b", 1, "ghost"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	states := map[string]srs.Item{
		"a": locked("a"),
		"b": locked("b"),
	}
	got := g.Unlockable(states, srs.KindFixedStage)
	if slices.Contains(got, "b") {
		t.Error("entry with missing prerequisite must not unlock")
	}
	if !slices.Contains(got, "a") {
		t.Error("unaffected entry should still unlock")
	}
}

func TestUnlockable_PureAndMonotonic(t *testing.T) {
	g, err := New([]Entry{
		entry("a", 1),
		entry("b", 1, "a"),
		entry("c", 1, "missing"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	states := map[string]srs.Item{
		"a": active("a", 0),
		"b": locked("b"),
		"c": locked("c"),
	}

	first := g.Unlockable(states, srs.KindBackoff)
	second := g.Unlockable(states, srs.KindBackoff)
	if !slices.Equal(first, second) {
		t.Errorf("Unlockable not pure: %v vs %v", first, second)
	}

	// Supplying the previously missing prerequisite only grows the set.
	g2, err := New([]Entry{
		entry("a", 1),
		entry("b", 1, "a"),
		entry("c", 1, "missing"),
		entry("missing", 1),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	states["missing"] = active("missing", 0)

	grown := g2.Unlockable(states, srs.KindBackoff)
	for _, id := range first {
		if !slices.Contains(grown, id) {
			t.Errorf("adding a missing prerequisite removed %q from the unlockable set", id)
		}
	}
	if !slices.Contains(grown, "c") {
		t.Errorf("Unlockable = %v, want c included", grown)
	}
}

func TestUnlock_OnlyMovesLockedItems(t *testing.T) {
	it := Unlock(locked("a"))
	if it.Status != srs.StatusActive {
		t.Errorf("Status = %s, want active", it.Status)
	}

	retired := srs.Item{ID: "b", Status: srs.StatusRetired}
	if got := Unlock(retired); got != retired {
		t.Error("Unlock changed a non-locked item")
	}
}
