package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGoal(t *testing.T, id string, milestones ...string) Goal {
	t.Helper()
	g, err := NewGoal(id, GoalDraft{Title: "Goal " + id, Category: "Health", MilestoneTitles: milestones}, testNow)
	require.NoError(t, err)
	return g
}

func assertCompletedInvariant(t *testing.T, goals []Goal) {
	t.Helper()
	for _, g := range goals {
		assert.Equal(t, g.Progress == 100, g.Completed, "goal %s", g.ID)
	}
}

func TestRun5kScenario(t *testing.T) {
	g, err := NewGoal("run", GoalDraft{
		Title:           "Run 5k",
		Category:        "Health",
		MilestoneTitles: []string{"Week 1", "Week 2"},
	}, testNow)
	require.NoError(t, err)
	goals := AppendGoal(nil, g)

	require.Len(t, goals, 1)
	assert.Equal(t, 0, goals[0].Progress)
	assert.False(t, goals[0].Completed)
	require.Len(t, goals[0].Milestones, 2)
	assert.False(t, goals[0].Milestones[0].Completed)
	assert.False(t, goals[0].Milestones[1].Completed)

	goals = ToggleMilestone(goals, "run", goals[0].Milestones[0].ID, testNow)
	assert.Equal(t, 50, goals[0].Progress)
	assert.False(t, goals[0].Completed)

	goals = ToggleMilestone(goals, "run", goals[0].Milestones[1].ID, testNow)
	assert.Equal(t, 100, goals[0].Progress)
	assert.True(t, goals[0].Completed)
	require.NotNil(t, goals[0].CompletedAt)
}

func TestSetProgress_CompletesWithoutMilestones(t *testing.T) {
	goals := []Goal{newTestGoal(t, "g", "a", "b")}

	goals = SetProgress(goals, "g", 100, testNow)

	assert.True(t, goals[0].Completed)
	assert.Equal(t, 100, goals[0].Progress)
	assert.Equal(t, 0, goals[0].CompletedMilestones())
}

func TestSetProgress_Clamps(t *testing.T) {
	goals := []Goal{newTestGoal(t, "g")}

	goals = SetProgress(goals, "g", 140, testNow)
	assert.Equal(t, 100, goals[0].Progress)
	assert.True(t, goals[0].Completed)

	goals = SetProgress(goals, "g", -3, testNow)
	assert.Equal(t, 0, goals[0].Progress)
	assert.False(t, goals[0].Completed)
}

func TestSetProgress_UnknownGoal(t *testing.T) {
	goals := []Goal{newTestGoal(t, "g")}
	got := SetProgress(goals, "missing", 50, testNow)
	assert.Equal(t, goals, got)
}

func TestToggleMilestone_ProgressMatchesCompletedShare(t *testing.T) {
	// Every subset of n milestones, toggled on one by one.
	for n := 1; n <= 6; n++ {
		titles := make([]string, n)
		for i := range titles {
			titles[i] = fmt.Sprintf("m%d", i)
		}
		for mask := 0; mask < 1<<n; mask++ {
			goals := []Goal{newTestGoal(t, "g", titles...)}
			done := 0
			for i := 0; i < n; i++ {
				if mask&(1<<i) == 0 {
					continue
				}
				goals = ToggleMilestone(goals, "g", MilestoneID("g", i), testNow)
				done++
			}
			if done == 0 {
				continue
			}
			want := int(math.Round(100 * float64(done) / float64(n)))
			assert.Equal(t, want, goals[0].Progress, "n=%d mask=%b", n, mask)
			assertCompletedInvariant(t, goals)
		}
	}
}

func TestToggleMilestone_TwiceRestores(t *testing.T) {
	goals := []Goal{newTestGoal(t, "g", "a", "b", "c")}
	goals = ToggleMilestone(goals, "g", "g-1", testNow)
	assert.Equal(t, 33, goals[0].Progress)
	goals = ToggleMilestone(goals, "g", "g-1", testNow)
	assert.Equal(t, 0, goals[0].Progress)
	assert.False(t, goals[0].Milestones[1].Completed)
}

func TestToggleMilestone_OverwritesManualProgress(t *testing.T) {
	goals := []Goal{newTestGoal(t, "g", "a", "b")}
	goals = SetProgress(goals, "g", 100, testNow)
	require.True(t, goals[0].Completed)

	goals = ToggleMilestone(goals, "g", "g-0", testNow)
	assert.Equal(t, 50, goals[0].Progress)
	assert.False(t, goals[0].Completed)
	assert.Nil(t, goals[0].CompletedAt)
}

func TestToggleMilestone_UnknownIDs(t *testing.T) {
	goals := []Goal{newTestGoal(t, "g", "a")}

	assert.Equal(t, goals, ToggleMilestone(goals, "missing", "g-0", testNow))
	assert.Equal(t, goals, ToggleMilestone(goals, "g", "g-9", testNow))
}

func TestOperations_DoNotMutateInput(t *testing.T) {
	goals := []Goal{newTestGoal(t, "g", "a", "b")}
	before := CloneGoals(goals)

	_ = ToggleMilestone(goals, "g", "g-0", testNow)
	_ = SetProgress(goals, "g", 80, testNow)
	_ = RemoveGoal(goals, "g")
	_ = AppendGoal(goals, newTestGoal(t, "h"))

	assert.Equal(t, before, goals)
}

func TestRemoveGoal(t *testing.T) {
	goals := []Goal{newTestGoal(t, "a"), newTestGoal(t, "b"), newTestGoal(t, "c")}

	got := RemoveGoal(goals, "b")
	require.Len(t, got, 2)
	assert.Equal(t, goals[0], got[0])
	assert.Equal(t, goals[2], got[1])

	got = RemoveGoal(goals, "missing")
	assert.Equal(t, goals, got)
}

func TestAppendGoal_KeepsOrder(t *testing.T) {
	var goals []Goal
	for _, id := range []string{"a", "b", "c"} {
		goals = AppendGoal(goals, newTestGoal(t, id))
	}
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestFindGoal(t *testing.T) {
	goals := []Goal{newTestGoal(t, "a", "x")}

	g, ok := FindGoal(goals, "a")
	require.True(t, ok)
	g.Milestones[0].Title = "changed"
	assert.Equal(t, "x", goals[0].Milestones[0].Title)

	_, ok = FindGoal(goals, "b")
	assert.False(t, ok)
}

func TestResolveGoalID(t *testing.T) {
	goals := []Goal{
		{ID: "01HZX3A0000000000000000000"},
		{ID: "01HZX3B0000000000000000000"},
		{ID: "01J0000000000000000000000Q"},
	}

	tests := []struct {
		ref     string
		want    string
		wantErr error
	}{
		{ref: "01HZX3A0000000000000000000", want: "01HZX3A0000000000000000000"},
		{ref: "01hzx3b", want: "01HZX3B0000000000000000000"},
		{ref: "01J", want: "01J0000000000000000000000Q"},
		{ref: "01HZX3", wantErr: ErrAmbiguousGoalID},
		{ref: "02", wantErr: ErrGoalNotFound},
		{ref: "  ", wantErr: ErrGoalNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ResolveGoalID(goals, tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveGoalID_ExactMatchFirst(t *testing.T) {
	tests := []struct {
		name  string
		goals []Goal
		ref   string
		want  string
	}{
		{
			name:  "exact match listed after longer IDs sharing the prefix",
			goals: []Goal{{ID: "12"}, {ID: "123"}, {ID: "1"}},
			ref:   "1",
			want:  "1",
		},
		{
			name:  "IDs differing only in case",
			goals: []Goal{{ID: "abc"}, {ID: "ABC"}},
			ref:   "ABC",
			want:  "ABC",
		},
		{
			name:  "lower-case twin",
			goals: []Goal{{ID: "ABC"}, {ID: "abc"}},
			ref:   "abc",
			want:  "abc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveGoalID(tt.goals, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ResolveGoalID([]Goal{{ID: "abc"}, {ID: "ABC"}}, "Abc")
	assert.ErrorIs(t, err, ErrAmbiguousGoalID)
}
