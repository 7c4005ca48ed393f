// Package tracker is the boundary to the issue-tracker collaborator. The
// planning core never performs I/O; this package defines the shapes a tracker
// client delivers, converts them to domain types, and pre-filters the issue
// set so the core sees a closed graph.
package tracker

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the top-level JSON structure a tracker client delivers: the
// unresolved issues (with their raw state history) plus contributor metadata.
type Snapshot struct {
	Issues       []IssueSnapshot       `json:"issues"`
	Contributors []ContributorSnapshot `json:"contributors,omitempty"`
}

// IssueSnapshot is one unresolved issue as serialized by the tracker.
type IssueSnapshot struct {
	ID                string               `json:"id"`
	RemainingEffortMs *int64               `json:"remaining_effort_ms,omitempty"`
	RemainingWaitMs   *int64               `json:"remaining_wait_ms,omitempty"`
	ParentID          string               `json:"parent_id,omitempty"`
	Dependencies      []string             `json:"dependencies,omitempty"`
	Splittable        *bool                `json:"splittable,omitempty"`
	AssigneeID        string               `json:"assignee_id,omitempty"`
	StateEvents       []StateEventSnapshot `json:"state_events,omitempty"`
}

// StateEventSnapshot is one raw history event. State is "active" or
// "inactive"; anything else (including absence) is unknown.
type StateEventSnapshot struct {
	TimeMs int64  `json:"time_ms"`
	State  string `json:"state,omitempty"`
}

// ContributorSnapshot is one contributor as serialized by the tracker.
type ContributorSnapshot struct {
	ID             string `json:"id"`
	MinutesPerWeek int    `json:"minutes_per_week"`
	NumMembers     *int   `json:"num_members,omitempty"`
}

// ParseSnapshot decodes a snapshot document.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing tracker snapshot: %w", err)
	}
	return &s, nil
}
