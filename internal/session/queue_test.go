package session

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/mizutori/kioku/internal/srs"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func taskSet(tasks []ReviewTask) map[ReviewTask]int {
	set := make(map[ReviewTask]int, len(tasks))
	for _, task := range tasks {
		set[task]++
	}
	return set
}

func TestBuildQueue_SingleTrackFiltersByDueAndStatus(t *testing.T) {
	policy, _ := srs.New(srs.KindFixedStage, srs.StageTable{})
	items := []srs.Item{
		{ID: "due-unset", Status: srs.StatusActive},
		{ID: "due-past", Status: srs.StatusActive, NextReviewAt: testNow.Add(-time.Minute)},
		{ID: "not-due", Status: srs.StatusActive, NextReviewAt: testNow.Add(time.Minute)},
		{ID: "locked", Status: srs.StatusLocked},
		{ID: "retired", Status: srs.StatusRetired},
	}

	tasks := BuildQueue(items, policy, testNow, QueueOpts{Rand: seeded(1)})

	want := map[ReviewTask]int{
		{ItemID: "due-unset"}: 1,
		{ItemID: "due-past"}:  1,
	}
	got := taskSet(tasks)
	if len(got) != len(want) {
		t.Fatalf("tasks = %v, want %v", got, want)
	}
	for task, n := range want {
		if got[task] != n {
			t.Errorf("task %v appeared %d times, want %d", task, got[task], n)
		}
	}
}

func TestBuildQueue_DualTrackEmitsPerOutstandingTrack(t *testing.T) {
	policy, _ := srs.New(srs.KindDualTrack, srs.StageTable{})
	table := srs.DualTrackTable()

	both := srs.Item{ID: "both", Status: srs.StatusActive}
	onlyReading := srs.Item{ID: "only-reading", Status: srs.StatusActive}
	onlyReading.Meaning.Correct = table.Stages[0].Meaning

	tasks := BuildQueue([]srs.Item{both, onlyReading}, policy, testNow, QueueOpts{Rand: seeded(2)})

	got := taskSet(tasks)
	want := map[ReviewTask]int{
		{ItemID: "both", Track: srs.TrackMeaning}:         1,
		{ItemID: "both", Track: srs.TrackReading}:         1,
		{ItemID: "only-reading", Track: srs.TrackReading}: 1,
	}
	if len(tasks) != 3 {
		t.Fatalf("len(tasks) = %d, want 3", len(tasks))
	}
	for task, n := range want {
		if got[task] != n {
			t.Errorf("task %v appeared %d times, want %d", task, got[task], n)
		}
	}
}

func TestBuildQueue_DualTrackRespectsNextReview(t *testing.T) {
	policy, _ := srs.New(srs.KindDualTrack, srs.StageTable{})
	item := srs.Item{
		ID:           "waiting",
		Status:       srs.StatusActive,
		NextReviewAt: testNow.Add(4 * time.Hour),
	}

	tasks := BuildQueue([]srs.Item{item}, policy, testNow, QueueOpts{Rand: seeded(3)})
	if len(tasks) != 0 {
		t.Errorf("tasks = %v, want empty until the review time passes", tasks)
	}
}

func TestBuildQueue_SeededShuffleIsDeterministic(t *testing.T) {
	policy, _ := srs.New(srs.KindBackoff, srs.StageTable{})
	var items []srs.Item
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		items = append(items, srs.Item{ID: id, Status: srs.StatusActive})
	}

	first := BuildQueue(items, policy, testNow, QueueOpts{Rand: seeded(42)})
	second := BuildQueue(items, policy, testNow, QueueOpts{Rand: seeded(42)})
	if !slices.Equal(first, second) {
		t.Errorf("same seed produced different orders:\n%v\n%v", first, second)
	}

	// Every due task present exactly once regardless of order.
	got := taskSet(first)
	if len(got) != len(items) {
		t.Fatalf("got %d distinct tasks, want %d", len(got), len(items))
	}
	for task, n := range got {
		if n != 1 {
			t.Errorf("task %v appeared %d times", task, n)
		}
	}
}

func TestBuildQueue_LimitAppliedAfterFullSetBuilt(t *testing.T) {
	policy, _ := srs.New(srs.KindBackoff, srs.StageTable{})
	var items []srs.Item
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		items = append(items, srs.Item{ID: id, Status: srs.StatusActive})
	}

	tasks := BuildQueue(items, policy, testNow, QueueOpts{Limit: 2, Rand: seeded(7)})
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}
}
