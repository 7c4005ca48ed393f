package domain

import "math"

// OpenEnded marks an activity whose end is not (yet) known. It compares
// greater than every real timestamp, so open-ended activities sort after
// finished ones.
const OpenEnded int64 = math.MaxInt64

// IssueActivity is one half-open interval [Start, End) of work on an issue,
// in epoch milliseconds. An empty AssigneeID means the assignee is unknown.
type IssueActivity struct {
	AssigneeID string
	StartMs    int64
	EndMs      int64 // OpenEnded if unterminated
	IsWaiting  bool
}

// Duration returns End-Start, or OpenEnded for an unterminated activity.
func (a IssueActivity) Duration() int64 {
	if a.EndMs == OpenEnded {
		return OpenEnded
	}
	return a.EndMs - a.StartMs
}

// PlannedIssue is an issue together with its resolved activity list, sorted
// by end timestamp.
type PlannedIssue struct {
	Issue      Issue
	Activities []IssueActivity
}

// PlanWarning is a non-fatal data-integrity finding, optionally tied to one
// issue.
type PlanWarning struct {
	Message string
	IssueID string
}

// ProjectPlan is the unified output shape: issues in input order, each with
// its activity list, plus any warnings collected along the way.
type ProjectPlan struct {
	Issues   []PlannedIssue
	Warnings []PlanWarning
}

// Clone deep-copies the plan. The composer mutates only clones, never
// caller-owned plans.
func (p ProjectPlan) Clone() ProjectPlan {
	out := ProjectPlan{
		Issues:   make([]PlannedIssue, len(p.Issues)),
		Warnings: append([]PlanWarning(nil), p.Warnings...),
	}
	for i, pi := range p.Issues {
		out.Issues[i] = PlannedIssue{
			Issue:      pi.Issue,
			Activities: append([]IssueActivity(nil), pi.Activities...),
		}
		out.Issues[i].Issue.Dependencies = append([]string(nil), pi.Issue.Dependencies...)
	}
	return out
}

// MultiAssigneeInterval is one maximal interval during which a fixed set of
// assignees is active.
type MultiAssigneeInterval struct {
	AssigneeIDs []string
	StartMs     int64
	EndMs       int64
	IsWaiting   bool
}
