package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/timeline"
)

const sampleSnapshot = `{
	"issues": [
		{
			"id": "PROJ-1",
			"remaining_effort_ms": 7200000,
			"remaining_wait_ms": 3600000,
			"splittable": true,
			"assignee_id": "alice",
			"state_events": [
				{"time_ms": 100, "state": "active"},
				{"time_ms": 200, "state": "inactive"},
				{"time_ms": 300}
			]
		},
		{"id": "PROJ-2", "parent_id": "PROJ-1", "dependencies": ["PROJ-1"]}
	],
	"contributors": [
		{"id": "alice", "minutes_per_week": 2400, "num_members": 2},
		{"id": "bob", "minutes_per_week": 1200}
	]
}`

func TestParseSnapshot_Invalid(t *testing.T) {
	_, err := ParseSnapshot([]byte("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing tracker snapshot")
}

func TestConvertSnapshot(t *testing.T) {
	snap, err := ParseSnapshot([]byte(sampleSnapshot))
	require.NoError(t, err)

	issues, contributors, events := ConvertSnapshot(snap)

	require.Len(t, issues, 2)
	assert.Equal(t, int64(7_200_000), issues[0].RemainingEffortMs)
	assert.Equal(t, int64(3_600_000), issues[0].RemainingWaitMs)
	assert.True(t, issues[0].Splittable)
	assert.Equal(t, "alice", issues[0].AssigneeID)

	// Absent fields fall back to their defaults.
	assert.Zero(t, issues[1].RemainingEffortMs)
	assert.False(t, issues[1].Splittable)
	assert.Equal(t, "PROJ-1", issues[1].ParentID)
	assert.Equal(t, []string{"PROJ-1"}, issues[1].Dependencies)

	require.Len(t, contributors, 2)
	assert.Equal(t, 2, contributors[0].NumMembers)
	assert.Equal(t, 1, contributors[1].NumMembers, "member count defaults to one")

	require.Len(t, events["PROJ-1"], 3)
	assert.Equal(t, timeline.StateActive, events["PROJ-1"][0].State)
	assert.Equal(t, timeline.StateInactive, events["PROJ-1"][1].State)
	assert.Equal(t, timeline.StateUnknown, events["PROJ-1"][2].State)
	assert.Empty(t, events["PROJ-2"])
}
