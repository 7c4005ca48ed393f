package scheduler

import "context"

// SplittingMode says how a job's work may be divided across time and machines.
type SplittingMode string

const (
	// SplitNone: one contiguous fragment on one machine.
	SplitNone SplittingMode = "none"
	// SplitPreemptable: may pause and resume, but only ever on one machine
	// at a time.
	SplitPreemptable SplittingMode = "preemptable"
	// SplitAcrossMachines: fragments may run concurrently on multiple
	// machines.
	SplitAcrossMachines SplittingMode = "splittable"
)

// NoPreAssignment marks a job that any machine may run.
const NoPreAssignment = -1

// Job is one abstract unit of work handed to the solver. A job either
// carries a real issue's work or is a zero-size structural dummy encoding a
// start-to-start or finish-to-finish constraint.
type Job struct {
	// Size is the quantized work amount, scaled by the regular-week minute
	// count so integer machine speeds divide it evenly. A machine of speed
	// v completes v size units per quantum.
	Size int64

	// DeliveryTime is a mandatory idle period, in quanta, after the job
	// completes and before any dependent may start.
	DeliveryTime int64

	Splitting SplittingMode

	// Dependencies are job indices that must fully complete (including
	// their delivery time) before this job starts. Forward references are
	// allowed.
	Dependencies []int

	// PreAssignment is the machine index this job must run on, or
	// NoPreAssignment. Any machine slot belonging to the same contributor
	// satisfies the assignment.
	PreAssignment int
}

// Instance is the immutable solver input.
type Instance struct {
	// MachineSpeeds lists one speed per machine slot, in minutes of
	// regular work per week. Contributors with more than one member
	// contribute that many consecutive slots.
	MachineSpeeds []int

	Jobs []Job

	// MinFragmentSize is the minimum fragment length in quanta; a
	// fragment may only be shorter if it is its job's only fragment.
	MinFragmentSize int64
}

// Fragment is one solved piece of a job, in quantized time units.
type Fragment struct {
	Machine   int
	StartQ    int64
	EndQ      int64
	IsWaiting bool
}

// Schedule is the solver output: for each job, its fragments in start order.
type Schedule [][]Fragment

// Solver assigns job fragments to machines. This is the single asynchronous
// suspension point of the planning pipeline; implementations must reject
// instances whose dependency graph has a cycle or is otherwise infeasible.
type Solver interface {
	Solve(ctx context.Context, inst Instance) (Schedule, error)
}
