package scheduler

import (
	"context"
	"errors"
)

// testListSolver is a minimal greedy list scheduler for exercising the
// reduce/translate path in tests. It schedules every job as one contiguous
// fragment (ignoring preemption and splitting), honors dependency completion
// including delivery time, honors pre-assignments, and emits a waiting
// fragment for a job's delivery period. It rejects cyclic instances.
type testListSolver struct{}

func (testListSolver) Solve(_ context.Context, inst Instance) (Schedule, error) {
	n := len(inst.Jobs)
	sched := make(Schedule, n)
	done := make([]bool, n)
	completion := make([]int64, n) // includes delivery time
	machineFree := make([]int64, len(inst.MachineSpeeds))

	for scheduled := 0; scheduled < n; {
		progressed := false
		for j := 0; j < n; j++ {
			if done[j] || !depsDone(inst.Jobs[j], done) {
				continue
			}

			ready := int64(0)
			for _, d := range inst.Jobs[j].Dependencies {
				if completion[d] > ready {
					ready = completion[d]
				}
			}

			machine := inst.Jobs[j].PreAssignment
			if machine == NoPreAssignment {
				machine = 0
				for m := 1; m < len(machineFree); m++ {
					if machineFree[m] < machineFree[machine] {
						machine = m
					}
				}
			}

			start := max64(ready, machineFree[machine])
			duration := ceilDiv(inst.Jobs[j].Size, int64(inst.MachineSpeeds[machine]))
			end := start + duration

			sched[j] = []Fragment{{Machine: machine, StartQ: start, EndQ: end}}
			if d := inst.Jobs[j].DeliveryTime; d > 0 {
				sched[j] = append(sched[j], Fragment{Machine: machine, StartQ: end, EndQ: end + d, IsWaiting: true})
			}
			if duration > 0 {
				machineFree[machine] = end
			}
			completion[j] = end + inst.Jobs[j].DeliveryTime
			done[j] = true
			scheduled++
			progressed = true
		}
		if !progressed {
			return nil, errors.New("cyclic dependency graph")
		}
	}
	return sched, nil
}

func depsDone(j Job, done []bool) bool {
	for _, d := range j.Dependencies {
		if !done[d] {
			return false
		}
	}
	return true
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
