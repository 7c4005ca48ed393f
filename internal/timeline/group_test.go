package timeline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
)

func TestGroup_OverlappingAssignees(t *testing.T) {
	got := GroupByIntervalAndWaitStatus([]domain.IssueActivity{
		act("a", 0, 2),
		act("b", 1, 3),
	})

	require.Len(t, got, 3)
	assert.Equal(t, domain.MultiAssigneeInterval{AssigneeIDs: []string{"a"}, StartMs: 0, EndMs: 1}, got[0])
	assert.Equal(t, domain.MultiAssigneeInterval{AssigneeIDs: []string{"a", "b"}, StartMs: 1, EndMs: 2}, got[1])
	assert.Equal(t, domain.MultiAssigneeInterval{AssigneeIDs: []string{"b"}, StartMs: 2, EndMs: 3}, got[2])
}

func TestGroup_AdjacentSameAssigneeMerge(t *testing.T) {
	got := GroupByIntervalAndWaitStatus([]domain.IssueActivity{
		act("a", 0, 5),
		act("a", 5, 10),
		act("a", 3, 6),
	})

	require.Len(t, got, 1, "overlap and adjacency with one assignee collapse to one interval")
	assert.Equal(t, int64(0), got[0].StartMs)
	assert.Equal(t, int64(10), got[0].EndMs)
}

func TestGroup_WaitingSweptSeparately(t *testing.T) {
	waiting := act("a", 0, 10)
	waiting.IsWaiting = true

	got := GroupByIntervalAndWaitStatus([]domain.IssueActivity{
		act("a", 0, 10),
		waiting,
	})

	require.Len(t, got, 2)
	assert.False(t, got[0].IsWaiting, "non-waiting sorts first on equal start")
	assert.True(t, got[1].IsWaiting)
}

func TestGroup_GapProducesNoInterval(t *testing.T) {
	got := GroupByIntervalAndWaitStatus([]domain.IssueActivity{
		act("a", 0, 2),
		act("a", 5, 7),
	})

	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].EndMs)
	assert.Equal(t, int64(5), got[1].StartMs)
}

func TestGroup_OpenEndedActivity(t *testing.T) {
	got := GroupByIntervalAndWaitStatus([]domain.IssueActivity{
		{AssigneeID: "a", StartMs: 0, EndMs: domain.OpenEnded},
		act("b", 1, 3),
	})

	require.Len(t, got, 3)
	assert.Equal(t, domain.OpenEnded, got[2].EndMs)
	assert.Equal(t, []string{"a"}, got[2].AssigneeIDs)
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, GroupByIntervalAndWaitStatus(nil))
}

// TestGroup_SweepProperties checks the grouper against its defining
// properties on random inputs: output intervals never overlap, adjacent
// intervals of the same wait class differ in assignee set, and the covered
// point set matches the union of the inputs.
func TestGroup_SweepProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(10) + 1
		var acts []domain.IssueActivity
		for k := 0; k < n; k++ {
			start := int64(rng.Intn(50))
			acts = append(acts, domain.IssueActivity{
				AssigneeID: string(rune('a' + rng.Intn(4))),
				StartMs:    start,
				EndMs:      start + int64(rng.Intn(20)+1),
				IsWaiting:  rng.Intn(2) == 0,
			})
		}

		got := GroupByIntervalAndWaitStatus(acts)

		perClass := map[bool][]domain.MultiAssigneeInterval{}
		for _, iv := range got {
			require.NotEmpty(t, iv.AssigneeIDs, "trial %d", trial)
			assert.Less(t, iv.StartMs, iv.EndMs, "trial %d", trial)
			perClass[iv.IsWaiting] = append(perClass[iv.IsWaiting], iv)
		}
		for _, ivs := range perClass {
			for i := 1; i < len(ivs); i++ {
				assert.GreaterOrEqual(t, ivs[i].StartMs, ivs[i-1].EndMs,
					"trial %d: intervals of one class never overlap", trial)
				if ivs[i].StartMs == ivs[i-1].EndMs {
					assert.NotEqual(t, ivs[i-1].AssigneeIDs, ivs[i].AssigneeIDs,
						"trial %d: adjacent intervals must differ", trial)
				}
			}
		}

		// Point-wise: a timestamp is covered by an interval of a class
		// iff some input activity of that class covers it.
		for _, wait := range []bool{false, true} {
			for p := int64(0); p < 75; p++ {
				want := false
				for _, a := range acts {
					if a.IsWaiting == wait && a.StartMs <= p && p < a.EndMs {
						want = true
					}
				}
				covered := false
				for _, iv := range perClass[wait] {
					if iv.StartMs <= p && p < iv.EndMs {
						covered = true
					}
				}
				assert.Equal(t, want, covered, "trial %d: point %d class %v", trial, p, wait)
			}
		}
	}
}
