package itemgraph

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Warning flags a data-integrity problem that does not abort graph
// construction. Entries carrying a warning are excluded from unlock
// computation rather than guessed at.
type Warning struct {
	EntryID string
	Missing string
}

func (w Warning) String() string {
	return fmt.Sprintf("entry %q references missing prerequisite %q", w.EntryID, w.Missing)
}

// Graph holds the entry collection with precomputed indices. Construction
// validates the prerequisite structure; a Graph that exists is acyclic.
type Graph struct {
	entries    []Entry
	byID       map[string]*Entry
	byLevel    map[int][]Entry
	dependents map[string][]string
	topoOrder  []Entry
	warnings   []Warning
	maxLevel   int
}

// New builds and validates a graph from the entry collection. Duplicate
// IDs, invalid levels, and prerequisite cycles are fatal; references to
// missing prerequisites are collected as warnings instead.
func New(entries []Entry) (*Graph, error) {
	g := &Graph{
		entries:    slices.Clone(entries),
		byID:       make(map[string]*Entry, len(entries)),
		byLevel:    make(map[int][]Entry),
		dependents: make(map[string][]string),
	}

	var errs []string
	for i := range g.entries {
		e := &g.entries[i]
		if _, dup := g.byID[e.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate entry ID: %q", e.ID))
			continue
		}
		g.byID[e.ID] = e
		if e.Level < 1 {
			errs = append(errs, fmt.Sprintf("entry %q has level %d, minimum is 1", e.ID, e.Level))
		}
		if e.Level > g.maxLevel {
			g.maxLevel = e.Level
		}
	}

	for i := range g.entries {
		e := &g.entries[i]
		for _, prereqID := range e.Prerequisites {
			if _, ok := g.byID[prereqID]; !ok {
				g.warnings = append(g.warnings, Warning{EntryID: e.ID, Missing: prereqID})
				continue
			}
			g.dependents[prereqID] = append(g.dependents[prereqID], e.ID)
		}
	}

	if cycle := g.findCycle(); len(cycle) > 0 {
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving entries: %s", joinSorted(cycle)))
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return nil, fmt.Errorf("item graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}

	for i := range g.entries {
		e := g.entries[i]
		g.byLevel[e.Level] = append(g.byLevel[e.Level], e)
	}
	for level := range g.byLevel {
		sort.Slice(g.byLevel[level], func(i, j int) bool {
			return g.byLevel[level][i].ID < g.byLevel[level][j].ID
		})
	}

	return g, nil
}

// findCycle runs Kahn's algorithm over the resolvable prerequisite edges
// and returns the IDs left unvisited, which are exactly the members of
// prerequisite cycles (and everything downstream of them).
func (g *Graph) findCycle() []string {
	inDegree := make(map[string]int, len(g.entries))
	for i := range g.entries {
		e := g.entries[i]
		for _, prereqID := range e.Prerequisites {
			if _, ok := g.byID[prereqID]; ok {
				inDegree[e.ID]++
			}
		}
	}

	var queue []string
	for i := range g.entries {
		if inDegree[g.entries[i].ID] == 0 {
			queue = append(queue, g.entries[i].ID)
		}
	}
	sort.Strings(queue)

	g.topoOrder = g.topoOrder[:0]
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		g.topoOrder = append(g.topoOrder, *g.byID[id])

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited == len(g.byID) {
		return nil
	}
	var stuck []string
	for id, deg := range inDegree {
		if deg > 0 {
			stuck = append(stuck, id)
		}
	}
	return stuck
}

// Get returns an entry by ID.
func (g *Graph) Get(id string) (Entry, error) {
	e, ok := g.byID[id]
	if !ok {
		return Entry{}, fmt.Errorf("entry not found: %q", id)
	}
	return *e, nil
}

// All returns every entry in the collection.
func (g *Graph) All() []Entry {
	return slices.Clone(g.entries)
}

// ByLevel returns the entries at a given level, ordered by ID.
func (g *Graph) ByLevel(level int) []Entry {
	return slices.Clone(g.byLevel[level])
}

// MaxLevel returns the highest level present in the collection.
func (g *Graph) MaxLevel() int {
	return g.maxLevel
}

// Dependents returns the IDs of entries that list the given entry as a
// prerequisite.
func (g *Graph) Dependents(id string) []string {
	return slices.Clone(g.dependents[id])
}

// TopologicalOrder returns every entry in a valid prerequisite order.
func (g *Graph) TopologicalOrder() []Entry {
	return slices.Clone(g.topoOrder)
}

// Warnings returns the data-integrity warnings collected during
// construction.
func (g *Graph) Warnings() []Warning {
	return slices.Clone(g.warnings)
}

func joinSorted(ids []string) string {
	sorted := slices.Clone(ids)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
