package session

import (
	"math/rand/v2"
	"time"

	"github.com/mizutori/kioku/internal/srs"
)

// ReviewTask is one unit of work in a review session: an item plus, for
// dual-track policies, the sub-track being asked.
type ReviewTask struct {
	ItemID string
	Track  srs.Track
}

// QueueOpts configures due-queue construction.
type QueueOpts struct {
	// Limit caps the queue size; 0 means uncapped. Applied after the
	// full due set is built and shuffled.
	Limit int

	// Rand is the shuffle source. Nil uses the process-wide source;
	// tests inject a seeded source for deterministic ordering.
	Rand *rand.Rand
}

// BuildQueue returns the review tasks due at now, uniformly shuffled.
// Callers must not assume any ordering beyond "every due task appears
// exactly once per due sub-track".
//
// For single-track policies an item contributes one task when it is due.
// For the dual-track policy a due item contributes one task per sub-track
// still below the current stage's threshold, so an item can appear twice
// in one queue.
func BuildQueue(items []srs.Item, policy srs.Policy, now time.Time, opts QueueOpts) []ReviewTask {
	var tasks []ReviewTask

	dual, isDual := policy.(srs.DualTrack)
	for _, it := range items {
		if !it.Due(now) {
			continue
		}
		if !isDual {
			tasks = append(tasks, ReviewTask{ItemID: it.ID})
			continue
		}
		for _, track := range dual.OutstandingTracks(it) {
			tasks = append(tasks, ReviewTask{ItemID: it.ID, Track: track})
		}
	}

	swap := func(i, j int) { tasks[i], tasks[j] = tasks[j], tasks[i] }
	if opts.Rand != nil {
		opts.Rand.Shuffle(len(tasks), swap)
	} else {
		rand.Shuffle(len(tasks), swap)
	}

	if opts.Limit > 0 && len(tasks) > opts.Limit {
		tasks = tasks[:opts.Limit]
	}
	return tasks
}
