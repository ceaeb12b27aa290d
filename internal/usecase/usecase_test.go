package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/goals/internal/domain"
	"github.com/runoshun/goals/internal/testutil"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func testCategories() domain.CategoryTable {
	return domain.CategoryTable(domain.DefaultCategories())
}

// env bundles the doubles shared by the use case tests.
type env struct {
	repo   *testutil.MockGoalRepository
	ids    *testutil.MockIDGenerator
	clock  *testutil.MockClock
	logger *testutil.MockLogger
}

func newEnv(goals ...domain.Goal) *env {
	return &env{
		repo:   testutil.NewMockGoalRepository(goals...),
		ids:    &testutil.MockIDGenerator{},
		clock:  &testutil.MockClock{NowTime: testNow},
		logger: &testutil.MockLogger{},
	}
}

func (e *env) createGoal() *CreateGoal {
	return NewCreateGoal(e.repo, e.ids, e.clock, e.logger, testCategories(), "Personal")
}

func seedGoal(t *testing.T, id string, milestones ...string) domain.Goal {
	t.Helper()
	g, err := domain.NewGoal(id, domain.GoalDraft{Title: "Goal " + id, Category: "Health", MilestoneTitles: milestones}, testNow)
	require.NoError(t, err)
	return g
}
