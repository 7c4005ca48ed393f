package scheduler

import "github.com/Tubbz-alt/project-planning-for-you-track/internal/forest"

// IndexMaps carries the bookkeeping needed to translate a solved schedule
// back to issues and contributors.
type IndexMaps struct {
	// JobIssue maps a job index to the arena index of its owning issue.
	JobIssue []int

	// JobIsDummy marks the zero-size structural jobs; they never surface
	// in translated output.
	JobIsDummy []bool

	// MachineContributor maps a machine slot back to the contributor it
	// expands from.
	MachineContributor []int

	// ContributorFirstMachine is the first machine slot of each
	// contributor's group.
	ContributorFirstMachine []int
}

// jobTriple records the job indices allocated to one forest node. For a leaf
// node all three are the same index; for a node with children, start and
// finish are the structural dummies and main is the node's own work.
type jobTriple struct {
	start  int
	finish int
	main   int
}

// Reduce compiles an issue forest plus options into a solver instance.
//
// A node with children gets two zero-size dummy jobs emitted before its main
// job: a start-to-start job that the main job and every direct child's start
// side depend on, and a finish-to-finish job depending on the main job and
// every direct child's finish side. Dependents of the issue depend on the
// finish side instead of the main job, which makes cross-level dependencies
// transitive. Emitting dummies ahead of real work keeps list-priority solvers
// from letting a structural job shadow ready real work.
//
// The reduction itself cannot fail: a cyclic dependency or parent graph only
// surfaces when the solver rejects the instance.
func Reduce(f *forest.Forest, opts Options) (Instance, *IndexMaps) {
	opts = opts.WithDefaults()

	maps := &IndexMaps{
		ContributorFirstMachine: make([]int, len(opts.Contributors)),
	}
	var speeds []int
	for ci, c := range opts.Contributors {
		maps.ContributorFirstMachine[ci] = len(speeds)
		for m := 0; m < c.Members(); m++ {
			speeds = append(speeds, c.MinutesPerWeek)
			maps.MachineContributor = append(maps.MachineContributor, ci)
		}
	}
	contributorByID := make(map[string]int, len(opts.Contributors))
	for ci, c := range opts.Contributors {
		contributorByID[c.ID] = ci
	}

	// First pass: allocate job indices in emission order so dependency
	// lists may reference jobs of issues appearing later in the input.
	triples := make([]jobTriple, f.Len())
	jobCount := 0
	f.Visit(func(i int, n *forest.Node) {
		if len(n.Children) > 0 {
			triples[i] = jobTriple{start: jobCount, finish: jobCount + 1, main: jobCount + 2}
			jobCount += 3
		} else {
			triples[i] = jobTriple{start: jobCount, finish: jobCount, main: jobCount}
			jobCount++
		}
	}, nil)

	jobs := make([]Job, jobCount)
	maps.JobIssue = make([]int, jobCount)
	maps.JobIsDummy = make([]bool, jobCount)

	f.Visit(func(i int, n *forest.Node) {
		tr := triples[i]
		issue := n.Issue

		main := Job{
			Size:          ceilDiv(issue.RemainingEffortMs, opts.QuantumMs) * int64(opts.MinutesPerRegularWeek),
			DeliveryTime:  ceilDiv(issue.RemainingWaitMs, opts.QuantumMs),
			Splitting:     SplitPreemptable,
			PreAssignment: NoPreAssignment,
		}
		if issue.Splittable {
			main.Splitting = SplitAcrossMachines
		}
		if issue.AssigneeID != "" {
			if ci, ok := contributorByID[issue.AssigneeID]; ok {
				main.PreAssignment = maps.ContributorFirstMachine[ci]
			}
		}

		// The start side inherits the issue's own dependencies and the
		// parent's start-to-start constraint.
		var startDeps []int
		for _, d := range n.Dependencies {
			startDeps = append(startDeps, triples[d].finish)
		}
		if n.Parent != forest.NoNode {
			startDeps = append(startDeps, triples[n.Parent].start)
		}

		if len(n.Children) > 0 {
			start := Job{Splitting: SplitNone, PreAssignment: NoPreAssignment, Dependencies: startDeps}
			finish := Job{Splitting: SplitNone, PreAssignment: NoPreAssignment}
			finish.Dependencies = append(finish.Dependencies, tr.main)
			for _, c := range n.Children {
				finish.Dependencies = append(finish.Dependencies, triples[c].finish)
			}
			main.Dependencies = []int{tr.start}

			jobs[tr.start], jobs[tr.finish], jobs[tr.main] = start, finish, main
			maps.JobIsDummy[tr.start] = true
			maps.JobIsDummy[tr.finish] = true
			maps.JobIssue[tr.start] = i
			maps.JobIssue[tr.finish] = i
			maps.JobIssue[tr.main] = i
			return
		}

		main.Dependencies = startDeps
		jobs[tr.main] = main
		maps.JobIssue[tr.main] = i
	}, nil)

	inst := Instance{
		MachineSpeeds:   speeds,
		Jobs:            jobs,
		MinFragmentSize: opts.MinActivityDuration,
	}
	return inst, maps
}

func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
