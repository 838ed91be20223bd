package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/srs"
)

type memSaver struct {
	saved  map[string]srs.Item
	failOn string
}

func newMemSaver() *memSaver {
	return &memSaver{saved: make(map[string]srs.Item)}
}

func (m *memSaver) SaveItem(_ context.Context, item srs.Item) error {
	if m.failOn == item.ID {
		return errors.New("disk full")
	}
	m.saved[item.ID] = item
	return nil
}

func testGraph(t *testing.T) *itemgraph.Graph {
	t.Helper()
	g, err := itemgraph.New([]itemgraph.Entry{
		{ID: "v1", Kind: itemgraph.KindVocabulary, Prompt: "犬", Meaning: "dog", Reading: "いぬ", Level: 1},
		{ID: "v2", Kind: itemgraph.KindVocabulary, Prompt: "猫", Meaning: "cat", Reading: "ねこ", Level: 1},
		{ID: "k1", Kind: itemgraph.KindCharacter, Prompt: "水", Meaning: "water", Reading: "みず", Level: 2, Prerequisites: []string{"v1"}},
	})
	if err != nil {
		t.Fatalf("itemgraph.New: %v", err)
	}
	return g
}

func testRunner(t *testing.T, kind srs.Kind, items []srs.Item, saver ItemSaver) *Runner {
	t.Helper()
	policy, err := srs.New(kind, srs.StageTable{})
	if err != nil {
		t.Fatalf("srs.New: %v", err)
	}
	return NewRunner(policy, testGraph(t), items, saver, QueueOpts{Rand: rand.New(rand.NewPCG(9, 9))})
}

func TestRunner_AnswerPersistsAndRecounts(t *testing.T) {
	saver := newMemSaver()
	r := testRunner(t, srs.KindFixedStage, []srs.Item{
		{ID: "v1", Status: srs.StatusActive},
		{ID: "v2", Status: srs.StatusActive},
	}, saver)

	task, ok := r.Next(testNow)
	if !ok {
		t.Fatal("expected a due task")
	}

	updated, err := r.Answer(context.Background(), task, srs.Answered(true), testNow)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if updated.Mastery != 25 {
		t.Errorf("Mastery = %d, want 25", updated.Mastery)
	}
	if _, ok := saver.saved[task.ItemID]; !ok {
		t.Error("updated item not persisted")
	}

	// The answered item is rescheduled a day out, so the rebuilt queue
	// only holds the other one.
	next, ok := r.Next(testNow)
	if !ok {
		t.Fatal("expected the remaining item to be due")
	}
	if next.ItemID == task.ItemID {
		t.Errorf("queue still contains answered item %q", next.ItemID)
	}
}

func TestRunner_QueueRecomputedNotCached(t *testing.T) {
	saver := newMemSaver()
	r := testRunner(t, srs.KindFixedStage, []srs.Item{
		{ID: "v1", Status: srs.StatusActive},
		{ID: "v2", Status: srs.StatusActive},
	}, saver)

	for i := 0; i < 2; i++ {
		task, ok := r.Next(testNow)
		if !ok {
			t.Fatalf("step %d: expected a due task", i)
		}
		if _, err := r.Answer(context.Background(), task, srs.Answered(true), testNow); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	if _, ok := r.Next(testNow); ok {
		t.Error("queue should be empty after both items rescheduled")
	}

	res := r.Result()
	if res.Answered != 2 || res.Correct != 2 {
		t.Errorf("Result = %+v, want 2 answered 2 correct", res)
	}
}

func TestRunner_SaveFailureLeavesStateUnchanged(t *testing.T) {
	saver := newMemSaver()
	saver.failOn = "v1"
	r := testRunner(t, srs.KindFixedStage, []srs.Item{
		{ID: "v1", Status: srs.StatusActive},
	}, saver)

	task := ReviewTask{ItemID: "v1"}
	_, err := r.Answer(context.Background(), task, srs.Answered(true), testNow)
	if err == nil {
		t.Fatal("expected save error")
	}

	item, _ := r.Item("v1")
	if item.Mastery != 0 || item.CorrectCount != 0 {
		t.Errorf("in-memory state mutated despite failed save: %+v", item)
	}
	if res := r.Result(); res.Answered != 0 {
		t.Errorf("Answered = %d, want 0", res.Answered)
	}
}

func TestRunner_InvalidTransitionSurfaced(t *testing.T) {
	r := testRunner(t, srs.KindFixedStage, []srs.Item{
		{ID: "v1", Status: srs.StatusRetired},
	}, newMemSaver())

	_, err := r.Answer(context.Background(), ReviewTask{ItemID: "v1"}, srs.Answered(true), testNow)
	if !errors.Is(err, srs.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestRunner_SessionCap(t *testing.T) {
	policy, _ := srs.New(srs.KindFixedStage, srs.StageTable{})
	items := []srs.Item{
		{ID: "v1", Status: srs.StatusActive},
		{ID: "v2", Status: srs.StatusActive},
	}
	r := NewRunner(policy, testGraph(t), items, newMemSaver(), QueueOpts{
		Limit: 1,
		Rand:  rand.New(rand.NewPCG(3, 3)),
	})

	task, ok := r.Next(testNow)
	if !ok {
		t.Fatal("expected one task under the cap")
	}
	if _, err := r.Answer(context.Background(), task, srs.Answered(true), testNow); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, ok := r.Next(testNow); ok {
		t.Error("cap reached but Next still returned a task")
	}
}

func TestRunner_ResolveUnlocks(t *testing.T) {
	saver := newMemSaver()
	r := testRunner(t, srs.KindDualTrack, []srs.Item{
		{ID: "v1", Status: srs.StatusActive, Stage: 1},
		{ID: "v2", Status: srs.StatusActive, Stage: 1},
		{ID: "k1", Status: srs.StatusLocked},
	}, saver)

	ids, err := r.ResolveUnlocks(context.Background(), testNow)
	if err != nil {
		t.Fatalf("ResolveUnlocks: %v", err)
	}
	if len(ids) != 1 || ids[0] != "k1" {
		t.Fatalf("unlocked = %v, want [k1]", ids)
	}

	item, _ := r.Item("k1")
	if item.Status != srs.StatusActive {
		t.Errorf("k1 status = %s, want active", item.Status)
	}
	if saved, ok := saver.saved["k1"]; !ok || saved.Status != srs.StatusActive {
		t.Error("unlocked item not persisted")
	}
}
