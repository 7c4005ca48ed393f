package service

import (
	"context"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/app"
)

// PlanService is the public surface of the planning pipeline. Every call is
// independent and side-effect free; calls may run concurrently without
// coordination. The only suspension point is the solver call inside
// PredictSchedule and PlanProject; a caller cancels by cancelling the
// context.
type PlanService interface {
	// PredictSchedule compiles the issues into a scheduling instance,
	// solves it, and translates the solution into per-issue activities.
	PredictSchedule(ctx context.Context, req app.ScheduleRequest) (app.ScheduleResponse, error)

	// ReconstructPlan rebuilds past activity timelines from raw tracker
	// state history.
	ReconstructPlan(ctx context.Context, req app.ReconstructRequest) (app.ReconstructResponse, error)

	// ComposePlan merges a reconstructed past with a forecast at a
	// division timestamp.
	ComposePlan(ctx context.Context, req app.ComposeRequest) (app.ComposeResponse, error)

	// PlanProject fetches a snapshot from the tracker source and runs the
	// whole pipeline: reconstruct, forecast, compose at NowMs.
	PlanProject(ctx context.Context, req app.ProjectPlanRequest) (app.ProjectPlanResponse, error)
}
