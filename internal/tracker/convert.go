package tracker

import (
	"context"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/timeline"
)

// IssueSource supplies tracker data to the planning pipeline. Pagination,
// OAuth, timeouts, and retries all live behind this interface; the core only
// sees fully assembled snapshots.
type IssueSource interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// ConvertSnapshot turns a parsed snapshot into domain issues, contributors,
// and per-issue chronological event streams. Validate the result with
// ValidateIssues before building a forest.
func ConvertSnapshot(s *Snapshot) ([]domain.Issue, []domain.Contributor, map[string][]timeline.StateEvent) {
	issues := make([]domain.Issue, 0, len(s.Issues))
	events := make(map[string][]timeline.StateEvent, len(s.Issues))
	for _, is := range s.Issues {
		issues = append(issues, domain.Issue{
			ID:                is.ID,
			RemainingEffortMs: domain.Int64FromPtrWithDefault(0, is.RemainingEffortMs),
			RemainingWaitMs:   domain.Int64FromPtrWithDefault(0, is.RemainingWaitMs),
			ParentID:          is.ParentID,
			Dependencies:      append([]string(nil), is.Dependencies...),
			Splittable:        domain.BoolFromPtrWithDefault(false, is.Splittable),
			AssigneeID:        is.AssigneeID,
		})
		for _, ev := range is.StateEvents {
			events[is.ID] = append(events[is.ID], timeline.StateEvent{
				TimeMs: ev.TimeMs,
				State:  parseState(ev.State),
			})
		}
	}

	contributors := make([]domain.Contributor, 0, len(s.Contributors))
	for _, c := range s.Contributors {
		contributors = append(contributors, domain.Contributor{
			ID:             c.ID,
			MinutesPerWeek: c.MinutesPerWeek,
			NumMembers:     domain.IntFromPtrWithDefault(1, c.NumMembers),
		})
	}
	return issues, contributors, events
}

func parseState(raw string) timeline.ActivityState {
	switch raw {
	case "active":
		return timeline.StateActive
	case "inactive":
		return timeline.StateInactive
	default:
		return timeline.StateUnknown
	}
}
