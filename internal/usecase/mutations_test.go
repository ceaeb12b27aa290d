package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goals/internal/domain"
)

func TestDeleteGoal_Execute(t *testing.T) {
	e := newEnv(seedGoal(t, "AAA1"), seedGoal(t, "BBB2"), seedGoal(t, "CCC3"))
	uc := NewDeleteGoal(e.repo, e.logger)

	out, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: "bbb"})
	require.NoError(t, err)

	assert.True(t, out.Removed)
	assert.Equal(t, "BBB2", out.GoalID)
	require.Len(t, e.repo.Goals, 2)
	assert.Equal(t, "AAA1", e.repo.Goals[0].ID)
	assert.Equal(t, "CCC3", e.repo.Goals[1].ID)
}

func TestDeleteGoal_UnknownIDStillSaves(t *testing.T) {
	e := newEnv(seedGoal(t, "AAA1"))
	uc := NewDeleteGoal(e.repo, e.logger)

	out, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: "ZZZ"})
	require.NoError(t, err)

	assert.False(t, out.Removed)
	assert.Len(t, out.Goals, 1)
	assert.Equal(t, 1, e.repo.SaveCalls)
}

func TestDeleteGoal_AmbiguousPrefix(t *testing.T) {
	e := newEnv(seedGoal(t, "AAA1"), seedGoal(t, "AAA2"))
	uc := NewDeleteGoal(e.repo, e.logger)

	_, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: "AAA"})
	assert.ErrorIs(t, err, domain.ErrAmbiguousGoalID)
	assert.Zero(t, e.repo.SaveCalls)
}

func TestDeleteGoal_ExactIDWinsOverPrefix(t *testing.T) {
	e := newEnv(seedGoal(t, "12"), seedGoal(t, "123"), seedGoal(t, "1"))
	uc := NewDeleteGoal(e.repo, e.logger)

	out, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: "1"})
	require.NoError(t, err)

	assert.True(t, out.Removed)
	require.Len(t, e.repo.Goals, 2)
	assert.Equal(t, "12", e.repo.Goals[0].ID)
	assert.Equal(t, "123", e.repo.Goals[1].ID)
}

func TestDeleteGoal_IDsDifferingInCase(t *testing.T) {
	e := newEnv(seedGoal(t, "abc"), seedGoal(t, "ABC"))
	uc := NewDeleteGoal(e.repo, e.logger)

	_, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: "ABC"})
	require.NoError(t, err)

	require.Len(t, e.repo.Goals, 1)
	assert.Equal(t, "abc", e.repo.Goals[0].ID)
}

func TestDeleteGoal_ExactIDSkipsPrefixMatching(t *testing.T) {
	e := newEnv(seedGoal(t, "AAA1"))
	uc := NewDeleteGoal(e.repo, e.logger)

	out, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: "AAA", ExactID: true})
	require.NoError(t, err)

	assert.False(t, out.Removed)
	assert.Len(t, e.repo.Goals, 1)
}

func TestSetProgress_ExactIDSkipsPrefixMatching(t *testing.T) {
	e := newEnv(seedGoal(t, "AAA1"))
	uc := NewSetProgress(e.repo, e.clock, e.logger)

	out, err := uc.Execute(context.Background(), SetProgressInput{GoalID: "AAA", ExactID: true, Progress: 40})
	require.NoError(t, err)

	assert.False(t, out.Updated)
	assert.Equal(t, 0, e.repo.Goals[0].Progress)
}

func TestToggleMilestone_Run5k(t *testing.T) {
	e := newEnv()
	created, err := e.createGoal().Execute(context.Background(), CreateGoalInput{
		Title:           "Run 5k",
		Category:        "Health",
		MilestoneTitles: []string{"Week 1", "Week 2"},
	})
	require.NoError(t, err)
	id := created.Goal.ID
	uc := NewToggleMilestone(e.repo, e.clock, e.logger)

	out, err := uc.Execute(context.Background(), ToggleMilestoneInput{GoalID: id, MilestoneID: created.Goal.Milestones[0].ID})
	require.NoError(t, err)
	assert.True(t, out.Toggled)
	assert.Equal(t, 50, out.Goal.Progress)
	assert.False(t, out.Goal.Completed)

	// Second milestone by position.
	out, err = uc.Execute(context.Background(), ToggleMilestoneInput{GoalID: id, MilestoneID: "2"})
	require.NoError(t, err)
	assert.Equal(t, 100, out.Goal.Progress)
	assert.True(t, out.Goal.Completed)
	require.NotNil(t, out.Goal.CompletedAt)
	assert.Equal(t, testNow, *out.Goal.CompletedAt)

	assert.Equal(t, out.Goals, e.repo.Goals)
	assert.Equal(t, 3, e.repo.SaveCalls)
}

func TestToggleMilestone_Unknown(t *testing.T) {
	tests := []struct {
		name      string
		goal      string
		milestone string
	}{
		{"unknown goal", "NOPE", "1"},
		{"unknown milestone id", "AAA1", "AAA1-7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(seedGoal(t, "AAA1", "a", "b"))
			before := domain.CloneGoals(e.repo.Goals)
			uc := NewToggleMilestone(e.repo, e.clock, e.logger)

			out, err := uc.Execute(context.Background(), ToggleMilestoneInput{GoalID: tt.goal, MilestoneID: tt.milestone})
			require.NoError(t, err)
			assert.False(t, out.Toggled)
			assert.Equal(t, before, e.repo.Goals)
			assert.Equal(t, 1, e.repo.SaveCalls)
		})
	}
}

func TestToggleMilestone_PositionOutOfRange(t *testing.T) {
	e := newEnv(seedGoal(t, "AAA1", "a", "b"))
	uc := NewToggleMilestone(e.repo, e.clock, e.logger)

	for _, ref := range []string{"0", "3", "-1"} {
		_, err := uc.Execute(context.Background(), ToggleMilestoneInput{GoalID: "AAA1", MilestoneID: ref})
		assert.ErrorIs(t, err, domain.ErrInvalidMilestoneID, ref)
	}
	assert.Zero(t, e.repo.SaveCalls)
}

func TestSetProgress_Execute(t *testing.T) {
	e := newEnv(seedGoal(t, "AAA1", "a", "b"))
	uc := NewSetProgress(e.repo, e.clock, e.logger)

	out, err := uc.Execute(context.Background(), SetProgressInput{GoalID: "AAA1", Progress: 100})
	require.NoError(t, err)

	// Completed even though no milestone is.
	assert.True(t, out.Updated)
	assert.True(t, out.Goal.Completed)
	assert.Equal(t, 0, out.Goal.CompletedMilestones())
	assert.True(t, e.repo.Goals[0].Completed)

	out, err = uc.Execute(context.Background(), SetProgressInput{GoalID: "AAA1", Progress: 30})
	require.NoError(t, err)
	assert.False(t, out.Goal.Completed)
	assert.Nil(t, out.Goal.CompletedAt)
	assert.Equal(t, 30, e.repo.Goals[0].Progress)
}

func TestSetProgress_OutOfRange(t *testing.T) {
	e := newEnv(seedGoal(t, "AAA1"))
	uc := NewSetProgress(e.repo, e.clock, e.logger)

	for _, p := range []int{-1, 101} {
		_, err := uc.Execute(context.Background(), SetProgressInput{GoalID: "AAA1", Progress: p})
		assert.ErrorIs(t, err, domain.ErrInvalidProgress)
	}
	assert.Zero(t, e.repo.SaveCalls)
}

func TestSetProgress_UnknownGoal(t *testing.T) {
	e := newEnv(seedGoal(t, "AAA1"))
	uc := NewSetProgress(e.repo, e.clock, e.logger)

	out, err := uc.Execute(context.Background(), SetProgressInput{GoalID: "ZZZ", Progress: 10})
	require.NoError(t, err)
	assert.False(t, out.Updated)
	assert.Equal(t, 0, e.repo.Goals[0].Progress)
	assert.Equal(t, 1, e.repo.SaveCalls)
}
