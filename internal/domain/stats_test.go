package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func completedOn(t time.Time) Goal {
	return Goal{Progress: 100, Completed: true, CompletedAt: &t}
}

func TestComputeStats(t *testing.T) {
	goals := []Goal{
		completedOn(testNow),
		{Progress: 30},
		{Progress: 0},
		{Progress: 99},
	}

	s := ComputeStats(goals, testNow)

	assert.Equal(t, Stats{Total: 4, Completed: 1, InProgress: 2, Streak: 1}, s)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil, testNow))
}

func TestCompletionStreak(t *testing.T) {
	day := func(offset int) time.Time {
		return testNow.AddDate(0, 0, offset)
	}

	tests := []struct {
		name  string
		goals []Goal
		want  int
	}{
		{"nothing completed", []Goal{{Progress: 50}}, 0},
		{"today only", []Goal{completedOn(day(0))}, 1},
		{"three days ending today", []Goal{completedOn(day(0)), completedOn(day(-1)), completedOn(day(-2))}, 3},
		{"ending yesterday", []Goal{completedOn(day(-1)), completedOn(day(-2))}, 2},
		{"gap breaks streak", []Goal{completedOn(day(0)), completedOn(day(-2)), completedOn(day(-3))}, 1},
		{"stale", []Goal{completedOn(day(-2))}, 0},
		{"same day counts once", []Goal{completedOn(day(0)), completedOn(day(0).Add(-time.Hour))}, 1},
		{"completed without timestamp", []Goal{{Progress: 100, Completed: true}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionStreak(tt.goals, testNow))
		})
	}
}

func TestCompletionStreak_UsesClockLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, loc)
	// 23:30 UTC on the 13th is the 14th in UTC+9.
	g := completedOn(time.Date(2026, 3, 13, 23, 30, 0, 0, time.UTC))

	assert.Equal(t, 1, CompletionStreak([]Goal{g}, now))
}
