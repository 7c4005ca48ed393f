package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/app"
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/forest"
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/scheduler"
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/timeline"
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/tracker"
)

type planService struct {
	solver   scheduler.Solver
	source   tracker.IssueSource // may be nil; only PlanProject needs it
	observer UseCaseObserver
}

// NewPlanService builds the planning pipeline around a solver and an
// optional tracker source. Pass observers for telemetry; nil observers are
// ignored.
func NewPlanService(solver scheduler.Solver, source tracker.IssueSource, observers ...UseCaseObserver) PlanService {
	return &planService{
		solver:   solver,
		source:   source,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) PredictSchedule(ctx context.Context, req app.ScheduleRequest) (app.ScheduleResponse, error) {
	start := time.Now()
	resp, err := s.predictSchedule(ctx, req)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "predict_schedule",
		RunID:     uuid.New().String(),
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"issues": len(req.Issues)},
		StartedAt: start,
	})
	return resp, err
}

func (s *planService) predictSchedule(ctx context.Context, req app.ScheduleRequest) (app.ScheduleResponse, error) {
	opts := req.Options.WithDefaults()
	if err := opts.Validate(); err != nil {
		return app.ScheduleResponse{}, &app.PlanError{
			Code: app.PlanErrInvalidOptions, Message: "bad scheduling options", Err: err,
		}
	}

	issues, warnings := tracker.ValidateIssues(req.Issues)
	f := forest.New(issues)
	inst, maps := scheduler.Reduce(f, opts)

	sched, err := s.solver.Solve(ctx, inst)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return app.ScheduleResponse{}, err
		}
		return app.ScheduleResponse{}, &app.PlanError{
			Code: app.PlanErrInfeasibleInstance, Message: "solver rejected the instance", Err: err,
		}
	}

	forecast := scheduler.Translate(sched, maps, f.Len(), opts)
	plan := domain.ProjectPlan{Issues: make([]domain.PlannedIssue, len(issues)), Warnings: warnings}
	for i, is := range issues {
		acts := append([]domain.IssueActivity(nil), forecast[i]...)
		timeline.SortActivities(acts)
		plan.Issues[i] = domain.PlannedIssue{Issue: is, Activities: acts}
	}
	return app.ScheduleResponse{Plan: plan, Forecast: forecast}, nil
}

func (s *planService) ReconstructPlan(ctx context.Context, req app.ReconstructRequest) (app.ReconstructResponse, error) {
	start := time.Now()

	plan := domain.ProjectPlan{Issues: make([]domain.PlannedIssue, len(req.Issues))}
	for i, is := range req.Issues {
		acts := timeline.Reconstruct(req.Events[is.ID], timeline.ReconstructOptions{
			AssigneeID:    is.AssigneeID,
			MinDurationMs: req.MinActivityDurationMs,
			EndMs:         req.NowMs,
		})
		plan.Issues[i] = domain.PlannedIssue{Issue: is, Activities: acts}
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "reconstruct_plan",
		RunID:     uuid.New().String(),
		Duration:  time.Since(start),
		Success:   true,
		Fields:    map[string]any{"issues": len(req.Issues)},
		StartedAt: start,
	})
	return app.ReconstructResponse{Plan: plan}, nil
}

func (s *planService) ComposePlan(ctx context.Context, req app.ComposeRequest) (app.ComposeResponse, error) {
	start := time.Now()
	plan, err := timeline.AppendSchedule(req.Past, req.Forecast, req.DivisionMs)
	if err != nil {
		err = &app.PlanError{Code: app.PlanErrIssueCountMismatch, Message: "plan and forecast differ", Err: err}
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "compose_plan",
		RunID:     uuid.New().String(),
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
	})
	if err != nil {
		return app.ComposeResponse{}, err
	}
	return app.ComposeResponse{Plan: plan}, nil
}

func (s *planService) PlanProject(ctx context.Context, req app.ProjectPlanRequest) (app.ProjectPlanResponse, error) {
	start := time.Now()
	resp, err := s.planProject(ctx, req)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan_project",
		RunID:     uuid.New().String(),
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
	})
	return resp, err
}

func (s *planService) planProject(ctx context.Context, req app.ProjectPlanRequest) (app.ProjectPlanResponse, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return app.ProjectPlanResponse{}, &app.PlanError{
			Code: app.PlanErrTrackerSource, Message: "fetching tracker snapshot", Err: err,
		}
	}
	issues, contributors, events := tracker.ConvertSnapshot(snap)
	issues, warnings := tracker.ValidateIssues(issues)

	opts := req.Options
	if len(opts.Contributors) == 0 {
		opts.Contributors = contributors
	}
	opts = opts.WithDefaults()
	if opts.PredictionStartMs == 0 {
		opts.PredictionStartMs = req.NowMs
	}
	minDur := req.MinActivityDurationMs
	if minDur == 0 {
		minDur = opts.MinActivityDuration * opts.QuantumMs
	}

	rec, err := s.ReconstructPlan(ctx, app.ReconstructRequest{
		Issues:                issues,
		Events:                events,
		MinActivityDurationMs: minDur,
		NowMs:                 req.NowMs,
	})
	if err != nil {
		return app.ProjectPlanResponse{}, err
	}

	fc, err := s.PredictSchedule(ctx, app.ScheduleRequest{Issues: issues, Options: opts})
	if err != nil {
		return app.ProjectPlanResponse{}, err
	}

	plan, err := timeline.AppendSchedule(rec.Plan, fc.Forecast, req.NowMs)
	if err != nil {
		return app.ProjectPlanResponse{}, &app.PlanError{
			Code: app.PlanErrIssueCountMismatch, Message: "composing past and forecast", Err: err,
		}
	}
	plan.Warnings = append(plan.Warnings, warnings...)
	return app.ProjectPlanResponse{Plan: plan}, nil
}
