package session

import (
	"context"
	"fmt"
	"time"

	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/srs"
)

// ItemSaver is the slice of the storage collaborator a session needs.
// The engine itself never performs I/O; the runner orchestrates
// load -> transition -> save around it.
type ItemSaver interface {
	SaveItem(ctx context.Context, item srs.Item) error
}

// Result summarizes a finished session.
type Result struct {
	Answered int
	Correct  int
	Retired  int
	Unlocked []string
}

// Runner drives one review session. The due queue is recomputed from
// current item state after every answer rather than cached at session
// start, because each transition changes what is due.
type Runner struct {
	policy srs.Policy
	graph  *itemgraph.Graph
	items  map[string]srs.Item
	saver  ItemSaver
	opts   QueueOpts

	answered int
	correct  int
	retired  int
	unlocked []string
}

// NewRunner creates a session over the given item states.
func NewRunner(policy srs.Policy, graph *itemgraph.Graph, items []srs.Item, saver ItemSaver, opts QueueOpts) *Runner {
	m := make(map[string]srs.Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return &Runner{
		policy: policy,
		graph:  graph,
		items:  m,
		saver:  saver,
		opts:   opts,
	}
}

// Next returns the next due task, or false when the session is over:
// either nothing is due anymore or the session cap is reached.
func (r *Runner) Next(now time.Time) (ReviewTask, bool) {
	opts := r.opts
	if opts.Limit > 0 {
		remaining := opts.Limit - r.answered
		if remaining <= 0 {
			return ReviewTask{}, false
		}
		opts.Limit = remaining
	}

	queue := BuildQueue(r.snapshot(), r.policy, now, opts)
	if len(queue) == 0 {
		return ReviewTask{}, false
	}
	return queue[0], true
}

// Entry returns the static content for a task's item.
func (r *Runner) Entry(id string) (itemgraph.Entry, error) {
	return r.graph.Get(id)
}

// Item returns the current scheduling state for an item ID.
func (r *Runner) Item(id string) (srs.Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// Answer applies one outcome to the task's item, persists the updated
// state, and records session totals. The stored state only changes when
// the transition succeeds.
func (r *Runner) Answer(ctx context.Context, task ReviewTask, o srs.Outcome, now time.Time) (srs.Item, error) {
	item, ok := r.items[task.ItemID]
	if !ok {
		return srs.Item{}, fmt.Errorf("unknown item %q", task.ItemID)
	}

	next, err := r.policy.Apply(item, o.On(task.Track), now)
	if err != nil {
		return item, err
	}
	if r.saver != nil {
		if err := r.saver.SaveItem(ctx, next); err != nil {
			return item, fmt.Errorf("save item %s: %w", next.ID, err)
		}
	}

	r.items[next.ID] = next
	r.answered++
	if o.Correct {
		r.correct++
	}
	if next.Status == srs.StatusRetired && item.Status != srs.StatusRetired {
		r.retired++
	}
	return next, nil
}

// ResolveUnlocks runs the unlock resolver over the current snapshot,
// persists every newly unlocked item, and returns their IDs. Typically
// called at session end so items learned this session gate the next
// level without waiting for a restart.
func (r *Runner) ResolveUnlocks(ctx context.Context, now time.Time) ([]string, error) {
	ids := r.graph.Unlockable(r.items, r.policy.Kind())
	for _, id := range ids {
		next := itemgraph.Unlock(r.items[id])
		if r.saver != nil {
			if err := r.saver.SaveItem(ctx, next); err != nil {
				return r.unlocked, fmt.Errorf("save unlocked item %s: %w", id, err)
			}
		}
		r.items[id] = next
		r.unlocked = append(r.unlocked, id)
	}
	return ids, nil
}

// Result returns the session totals so far.
func (r *Runner) Result() Result {
	return Result{
		Answered: r.answered,
		Correct:  r.correct,
		Retired:  r.retired,
		Unlocked: r.unlocked,
	}
}

func (r *Runner) snapshot() []srs.Item {
	items := make([]srs.Item, 0, len(r.items))
	for _, it := range r.items {
		items = append(items, it)
	}
	return items
}
