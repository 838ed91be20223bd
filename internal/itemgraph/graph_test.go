package itemgraph

import (
	"strings"
	"testing"
)

func entry(id string, level int, prereqs ...string) Entry {
	return Entry{ID: id, Kind: KindVocabulary, Prompt: id, Level: level, Prerequisites: prereqs}
}

func TestNew_DetectsCycle(t *testing.T) {
	_, err := New([]Entry{
		entry("a", 1, "b"),
		entry("b", 1, "a"),
	})
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestNew_DetectsDuplicateID(t *testing.T) {
	_, err := New([]Entry{
		entry("a", 1),
		entry("a", 1),
	})
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestNew_RejectsInvalidLevel(t *testing.T) {
	_, err := New([]Entry{entry("a", 0)})
	if err == nil {
		t.Fatal("expected error for level 0, got nil")
	}
}

func TestNew_MissingPrerequisiteIsWarningNotError(t *testing.T) {
	g, err := New([]Entry{
		entry("a", 1),
		entry("b", 1, "ghost"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	warnings := g.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warnings))
	}
	if warnings[0].EntryID != "b" || warnings[0].Missing != "ghost" {
		t.Errorf("warning = %+v, want b/ghost", warnings[0])
	}
}

func TestNew_SelfReferenceIsCycle(t *testing.T) {
	_, err := New([]Entry{entry("a", 1, "a")})
	if err == nil {
		t.Fatal("expected error for self-reference, got nil")
	}
}

func TestTopologicalOrder_RespectsPrerequisites(t *testing.T) {
	g, err := New([]Entry{
		entry("c", 2, "b"),
		entry("a", 1),
		entry("b", 1, "a"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pos := make(map[string]int)
	for i, e := range g.TopologicalOrder() {
		pos[e.ID] = i
	}
	if pos["a"] > pos["b"] || pos["b"] > pos["c"] {
		t.Errorf("topological order violated: %v", pos)
	}
}

func TestByLevel_SortedByID(t *testing.T) {
	g, err := New([]Entry{
		entry("z", 1),
		entry("a", 1),
		entry("m", 2),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	level1 := g.ByLevel(1)
	if len(level1) != 2 || level1[0].ID != "a" || level1[1].ID != "z" {
		t.Errorf("ByLevel(1) = %v", level1)
	}
	if g.MaxLevel() != 2 {
		t.Errorf("MaxLevel = %d, want 2", g.MaxLevel())
	}
}

func TestDependents(t *testing.T) {
	g, err := New([]Entry{
		entry("a", 1),
		entry("b", 1, "a"),
		entry("c", 1, "a"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	deps := g.Dependents("a")
	if len(deps) != 2 {
		t.Errorf("Dependents(a) = %v, want two entries", deps)
	}
}
