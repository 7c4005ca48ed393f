package scheduler

import (
	"math"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
)

// Translate converts a solved schedule into per-issue activity lists in real
// calendar time. The result is indexed like the issue list the forest was
// built from; issues whose jobs received no fragments get an empty list.
//
// Quantized timestamps convert as
//
//	epoch = ceil(predictionStart + q × quantumMs × (realWeek / regularWeek))
//
// because one quantum of regular work time stretches over proportionally
// more calendar time.
func Translate(sched Schedule, maps *IndexMaps, issueCount int, opts Options) [][]domain.IssueActivity {
	opts = opts.WithDefaults()
	stretch := float64(MinutesPerRealWeek) / float64(opts.MinutesPerRegularWeek)

	toEpoch := func(q int64) int64 {
		return int64(math.Ceil(float64(opts.PredictionStartMs) + float64(q)*float64(opts.QuantumMs)*stretch))
	}

	activities := make([][]domain.IssueActivity, issueCount)
	for j, fragments := range sched {
		if j >= len(maps.JobIssue) || maps.JobIsDummy[j] {
			continue
		}
		issueIdx := maps.JobIssue[j]
		for _, fr := range fragments {
			if fr.EndQ <= fr.StartQ {
				continue
			}
			ci := maps.MachineContributor[fr.Machine]
			activities[issueIdx] = append(activities[issueIdx], domain.IssueActivity{
				AssigneeID: opts.Contributors[ci].ID,
				StartMs:    toEpoch(fr.StartQ),
				EndMs:      toEpoch(fr.EndQ),
				IsWaiting:  fr.IsWaiting,
			})
		}
	}
	return activities
}
