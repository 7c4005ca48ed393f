package tracker

import (
	"fmt"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
)

// ValidateIssues pre-filters an issue list so every remaining parent and
// dependency reference resolves within the list. Dangling references come
// from tracker-side filtering (e.g. a resolved or invisible issue); they are
// data-integrity findings, not errors, so each repair is reported as a plan
// warning. Input order is preserved.
func ValidateIssues(issues []domain.Issue) ([]domain.Issue, []domain.PlanWarning) {
	var warnings []domain.PlanWarning

	known := make(map[string]bool, len(issues))
	kept := make([]domain.Issue, 0, len(issues))
	for _, is := range issues {
		if known[is.ID] {
			warnings = append(warnings, domain.PlanWarning{
				Message: fmt.Sprintf("duplicate issue %q ignored", is.ID),
				IssueID: is.ID,
			})
			continue
		}
		known[is.ID] = true
		kept = append(kept, is)
	}

	for i := range kept {
		is := &kept[i]
		if is.ParentID != "" && !known[is.ParentID] {
			warnings = append(warnings, domain.PlanWarning{
				Message: fmt.Sprintf("parent %q of issue %q is not in the snapshot; treating issue as a root", is.ParentID, is.ID),
				IssueID: is.ID,
			})
			is.ParentID = ""
		}

		var deps []string
		for _, dep := range is.Dependencies {
			if !known[dep] {
				warnings = append(warnings, domain.PlanWarning{
					Message: fmt.Sprintf("dependency %q of issue %q is not in the snapshot; dropping the edge", dep, is.ID),
					IssueID: is.ID,
				})
				continue
			}
			deps = append(deps, dep)
		}
		is.Dependencies = deps
	}
	return kept, warnings
}
