package app

import (
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/scheduler"
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/timeline"
)

// ScheduleRequest asks for a forecast of the given unresolved issues.
type ScheduleRequest struct {
	Issues  []domain.Issue
	Options scheduler.Options
}

type ScheduleResponse struct {
	// Plan holds the forecast activities per issue, in request order, plus
	// warnings about repaired dangling references.
	Plan domain.ProjectPlan

	// Forecast is the raw per-issue activity view of the same schedule,
	// shaped for AppendSchedule.
	Forecast [][]domain.IssueActivity
}

// ReconstructRequest asks for past timelines rebuilt from raw state history.
type ReconstructRequest struct {
	Issues []domain.Issue

	// Events holds each issue's chronological raw event stream.
	Events map[string][]timeline.StateEvent

	// MinActivityDurationMs removes shorter phases while denoising.
	MinActivityDurationMs int64

	// NowMs closes any trailing active phase.
	NowMs int64
}

type ReconstructResponse struct {
	Plan domain.ProjectPlan
}

// ComposeRequest merges a reconstructed past plan with a forecast at the
// division timestamp.
type ComposeRequest struct {
	Past       domain.ProjectPlan
	Forecast   [][]domain.IssueActivity
	DivisionMs int64
}

type ComposeResponse struct {
	Plan domain.ProjectPlan
}

// ProjectPlanRequest runs the full pipeline against a tracker snapshot:
// reconstruct the past, forecast the future, compose the two at NowMs.
type ProjectPlanRequest struct {
	Options scheduler.Options

	// MinActivityDurationMs denoises the reconstructed past; zero derives
	// it from the scheduling options (one quantum).
	MinActivityDurationMs int64

	NowMs int64
}

type ProjectPlanResponse struct {
	Plan domain.ProjectPlan
}
