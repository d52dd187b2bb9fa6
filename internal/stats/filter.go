package stats

import (
	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/types"
)

// FilterSet selects a subset of entries. Zero values mean "no filter",
// set filters combine with logical AND.
type FilterSet struct {
	HustleID uuid.UUID   // Exact match on the hustle reference
	Month    types.Month // Inclusive calendar-month window
}

// Filter returns the entries matching the FilterSet.
//
// The input ordering is preserved, no re-sort is performed. Unmatched
// filters yield an empty slice, never an error.
func Filter(entries []Entry, f FilterSet) []Entry {
	matches := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		if f.HustleID != uuid.Nil && entry.HustleID != f.HustleID {
			continue
		}

		if !f.Month.IsZero() && !f.Month.Contains(entry.Date) {
			continue
		}

		matches = append(matches, entry)
	}

	return matches
}

// Day is the group of entries sharing one calendar day.
type Day struct {
	Date    types.Date `json:"date" example:"2024-03-05"`
	Entries []Entry    `json:"entries"`
}

// GroupByDate partitions entries into groups keyed by their exact date.
//
// Groups appear in first-seen order of each date. Since callers pass
// entries ordered by date descending, the groups come out newest-first
// without any sorting here.
func GroupByDate(entries []Entry) []Day {
	days := make([]Day, 0)
	index := make(map[types.Date]int)

	for _, entry := range entries {
		i, seen := index[entry.Date]
		if !seen {
			i = len(days)
			index[entry.Date] = i
			days = append(days, Day{Date: entry.Date})
		}

		days[i].Entries = append(days[i].Entries, entry)
	}

	return days
}
