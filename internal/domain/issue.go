package domain

// Issue is one unresolved issue as delivered by the tracker. All fields are
// read-only for the planning core.
type Issue struct {
	ID string

	// Remaining effort in milliseconds of regular work time. Excludes the
	// effort of sub-issues.
	RemainingEffortMs int64

	// Remaining wait time in milliseconds: mandatory idle time after the
	// issue's own work completes before dependents may start.
	RemainingWaitMs int64

	ParentID     string
	Dependencies []string
	Splittable   bool
	AssigneeID   string
}

// Contributor is one person (or pool of identical people) available for
// scheduling.
type Contributor struct {
	ID string

	// MinutesPerWeek is how many minutes of regular work time this
	// contributor provides per week, per member.
	MinutesPerWeek int

	// NumMembers expands the contributor into that many identical-speed
	// machine slots. Zero means one.
	NumMembers int
}

// Members returns the effective member count, defaulting to one.
func (c Contributor) Members() int {
	if c.NumMembers < 1 {
		return 1
	}
	return c.NumMembers
}
