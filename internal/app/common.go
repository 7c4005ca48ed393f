// Package app defines the use-case contracts of the planning pipeline:
// request/response shapes and the expected-error taxonomy.
package app

type PlanErrorCode string

const (
	// PlanErrIssueCountMismatch: a plan and forecast do not cover the same
	// issues (positional correspondence is required).
	PlanErrIssueCountMismatch PlanErrorCode = "ISSUE_COUNT_MISMATCH"

	// PlanErrInfeasibleInstance: the solver rejected the instance, e.g.
	// because the dependency graph has a cycle.
	PlanErrInfeasibleInstance PlanErrorCode = "INFEASIBLE_INSTANCE"

	// PlanErrInvalidOptions: scheduling options failed validation.
	PlanErrInvalidOptions PlanErrorCode = "INVALID_OPTIONS"

	// PlanErrTrackerSource: the issue-tracker collaborator failed to
	// deliver a snapshot.
	PlanErrTrackerSource PlanErrorCode = "TRACKER_SOURCE"
)

// PlanError is an expected, recoverable caller-facing failure.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PlanError) Unwrap() error { return e.Err }
