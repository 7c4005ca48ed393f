package timeline

import (
	"fmt"
	"sort"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
)

// GroupByIntervalAndWaitStatus merges possibly-overlapping per-assignee
// activities into a minimal set of non-overlapping multi-assignee intervals.
// Waiting and non-waiting activities are swept independently and the results
// merged, sorted by start timestamp with non-waiting intervals first on ties.
//
// Each output interval is maximal: two adjacent intervals always differ in
// assignee set or waiting flag.
func GroupByIntervalAndWaitStatus(activities []domain.IssueActivity) []domain.MultiAssigneeInterval {
	var working, waiting []domain.IssueActivity
	for _, a := range activities {
		if a.IsWaiting {
			waiting = append(waiting, a)
		} else {
			working = append(working, a)
		}
	}

	out := sweep(working, false)
	out = append(out, sweep(waiting, true)...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartMs != out[j].StartMs {
			return out[i].StartMs < out[j].StartMs
		}
		return !out[i].IsWaiting && out[j].IsWaiting
	})
	return out
}

type boundary struct {
	timeMs     int64
	assigneeID string
	delta      int
}

// sweep runs a left-to-right sweep line over activity boundaries, tracking a
// per-assignee active count and emitting an interval whenever the set of
// active assignees changes.
func sweep(activities []domain.IssueActivity, isWaiting bool) []domain.MultiAssigneeInterval {
	var events []boundary
	for _, a := range activities {
		if a.EndMs != domain.OpenEnded && a.EndMs <= a.StartMs {
			continue
		}
		events = append(events, boundary{timeMs: a.StartMs, assigneeID: a.AssigneeID, delta: 1})
		events = append(events, boundary{timeMs: a.EndMs, assigneeID: a.AssigneeID, delta: -1})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].timeMs < events[j].timeMs })

	active := make(map[string]int)
	var out []domain.MultiAssigneeInterval
	var current []string // nil when no assignee is active
	var currentStart int64

	for i := 0; i < len(events); {
		t := events[i].timeMs
		for i < len(events) && events[i].timeMs == t {
			ev := events[i]
			active[ev.assigneeID] += ev.delta
			switch {
			case active[ev.assigneeID] < 0:
				panic(fmt.Sprintf("timeline: negative active count for assignee %q", ev.assigneeID))
			case active[ev.assigneeID] == 0:
				delete(active, ev.assigneeID)
			}
			i++
		}

		next := sortedAssignees(active)
		if equalAssignees(current, next) {
			continue
		}
		if current != nil {
			out = append(out, domain.MultiAssigneeInterval{
				AssigneeIDs: current,
				StartMs:     currentStart,
				EndMs:       t,
				IsWaiting:   isWaiting,
			})
		}
		current = next
		currentStart = t
	}
	// The event list always ends with the final -1 boundaries, so the
	// active set is empty here; a dangling current would be a bug.
	if current != nil {
		panic("timeline: sweep ended with active assignees")
	}
	return out
}

func sortedAssignees(active map[string]int) []string {
	if len(active) == 0 {
		return nil
	}
	ids := make([]string, 0, len(active))
	for id := range active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return compareAssignees(ids[i], ids[j]) < 0 })
	return ids
}

func equalAssignees(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
