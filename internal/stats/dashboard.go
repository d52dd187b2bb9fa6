package stats

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	topHustleCount   = 3
	recentEntryCount = 5
)

var oneHundred = decimal.NewFromInt(100)

// Dashboard computes the summary statistics for the dashboard.
//
// The caller passes the entries of the month window, ordered by date
// descending. The recent-entries list is simply the head of that input,
// which means it inherits the caller's month scoping.
func Dashboard(entries []Entry, goal decimal.Decimal) DashboardStats {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}

	return DashboardStats{
		MonthlyTotal:  total,
		MonthlyGoal:   goal,
		GoalProgress:  Progress(total, goal),
		TopHustles:    topHustles(entries),
		RecentEntries: recentEntries(entries),
	}
}

// Progress returns the percentage of the goal reached by the total,
// capped at 100. A goal of zero or less yields zero, not a division
// error.
func Progress(total, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}

	progress := total.Div(goal).Mul(oneHundred)
	if progress.GreaterThan(oneHundred) {
		return oneHundred
	}

	return progress
}

// topHustles groups the entries by hustle, sums the amounts and returns
// the three largest groups.
//
// The sort is stable: hustles with equal totals keep the order in which
// they were first encountered in the input.
func topHustles(entries []Entry) []HustleTotal {
	totals := make([]HustleTotal, 0)
	index := make(map[uuid.UUID]int)

	for _, entry := range entries {
		i, seen := index[entry.HustleID]
		if !seen {
			i = len(totals)
			index[entry.HustleID] = i
			totals = append(totals, HustleTotal{
				HustleID: entry.HustleID,
				Name:     entry.HustleName,
				Color:    entry.HustleColor,
			})
		}

		totals[i].Total = totals[i].Total.Add(entry.Amount)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})

	if len(totals) > topHustleCount {
		totals = totals[:topHustleCount]
	}

	return totals
}

// recentEntries returns the first entries of the input, which the caller
// ordered by date descending.
func recentEntries(entries []Entry) []Entry {
	recent := make([]Entry, 0, recentEntryCount)
	for i, entry := range entries {
		if i >= recentEntryCount {
			break
		}
		recent = append(recent, entry)
	}

	return recent
}
