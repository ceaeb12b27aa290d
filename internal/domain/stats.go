package domain

import "time"

// Stats are the summary counts shown above the goal grid.
type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Streak     int `json:"streak"` // Consecutive days with at least one goal completed
}

// ComputeStats derives the summary counts from goals.
func ComputeStats(goals []Goal, now time.Time) Stats {
	s := Stats{Total: len(goals)}
	for i := range goals {
		if goals[i].Completed {
			s.Completed++
		}
		if goals[i].IsInProgress() {
			s.InProgress++
		}
	}
	s.Streak = CompletionStreak(goals, now)
	return s
}

// CompletionStreak counts consecutive calendar days, ending today, on which
// at least one goal was completed. If nothing was completed today the
// streak may still end yesterday, so it survives until the day is over.
// Days are taken in now's location.
func CompletionStreak(goals []Goal, now time.Time) int {
	days := make(map[civilDate]bool)
	for _, g := range goals {
		if !g.Completed || g.CompletedAt == nil {
			continue
		}
		days[dateOf(g.CompletedAt.In(now.Location()))] = true
	}
	if len(days) == 0 {
		return 0
	}

	day := now
	if !days[dateOf(day)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for days[dateOf(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{year: y, month: m, day: d}
}
