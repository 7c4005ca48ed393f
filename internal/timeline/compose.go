package timeline

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
)

// assigneeCollator orders assignee identifiers with root-locale collation
// rules rather than raw byte order.
var assigneeCollator = collate.New(language.Und)

func compareAssignees(a, b string) int {
	return assigneeCollator.CompareString(a, b)
}

// MismatchError reports that a plan and a forecast do not cover the same
// issues. This is an expected caller error, not a bug.
type MismatchError struct {
	PlanIssues     int
	ForecastIssues int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("plan covers %d issues but forecast covers %d", e.PlanIssues, e.ForecastIssues)
}

// AppendSchedule merges a reconstructed past plan with a forecast at the
// division timestamp: past activities are clipped to end at or before it,
// forecast activities to start at or after it, so no activity ever straddles
// the boundary. Within the forecast side, an activity contiguous with the
// last one of the same assignee and waiting flag extends it instead of
// appending (solvers emit fragment-granular output).
//
// The input plan is deep-copied; the caller's data is never mutated.
func AppendSchedule(plan domain.ProjectPlan, forecast [][]domain.IssueActivity, divisionMs int64) (domain.ProjectPlan, error) {
	if len(plan.Issues) != len(forecast) {
		return domain.ProjectPlan{}, &MismatchError{
			PlanIssues:     len(plan.Issues),
			ForecastIssues: len(forecast),
		}
	}

	out := plan.Clone()
	for i := range out.Issues {
		var future []domain.IssueActivity
		for _, act := range forecast[i] {
			future = appendForecast(future, act, divisionMs)
		}
		merged := append(clipPast(out.Issues[i].Activities, divisionMs), future...)
		SortActivities(merged)
		out.Issues[i].Activities = merged
	}
	return out, nil
}

func clipPast(activities []domain.IssueActivity, divisionMs int64) []domain.IssueActivity {
	var kept []domain.IssueActivity
	for _, a := range activities {
		if a.StartMs >= divisionMs {
			continue
		}
		if a.EndMs > divisionMs {
			a.EndMs = divisionMs
		}
		kept = append(kept, a)
	}
	return kept
}

func appendForecast(kept []domain.IssueActivity, a domain.IssueActivity, divisionMs int64) []domain.IssueActivity {
	if a.EndMs != domain.OpenEnded && a.EndMs <= divisionMs {
		return kept
	}
	if a.StartMs < divisionMs {
		a.StartMs = divisionMs
	}

	// Extend the last activity of the same assignee when contiguous.
	for j := len(kept) - 1; j >= 0; j-- {
		if kept[j].AssigneeID != a.AssigneeID {
			continue
		}
		if kept[j].EndMs == a.StartMs && kept[j].IsWaiting == a.IsWaiting {
			kept[j].EndMs = a.EndMs
			return kept
		}
		break
	}
	return append(kept, a)
}

// SortActivities orders a single issue's activities by end timestamp, with
// locale-aware assignee order breaking ties. Open-ended activities sort last.
func SortActivities(activities []domain.IssueActivity) {
	sort.SliceStable(activities, func(i, j int) bool {
		if activities[i].EndMs != activities[j].EndMs {
			return activities[i].EndMs < activities[j].EndMs
		}
		return compareAssignees(activities[i].AssigneeID, activities[j].AssigneeID) < 0
	})
}
