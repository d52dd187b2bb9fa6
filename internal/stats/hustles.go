package stats

import (
	"sort"

	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ForHustles computes lifetime and monthly statistics for every hustle.
//
// The entries do not need to be filtered: the all-time total and the entry
// count cover all entries of a hustle, the monthly total is restricted to
// the month passed in. A hustle without entries yields all-zero stats, it
// is never omitted. Entries referencing an unknown hustle cannot be
// attributed and are ignored here.
//
// The result is sorted by monthly total, highest first. The sort is stable,
// hustles with equal totals keep the order of the input, which callers
// provide alphabetically by name.
func ForHustles(hustles []Hustle, entries []Entry, month types.Month) []HustleStats {
	type sums struct {
		allTime decimal.Decimal
		monthly decimal.Decimal
		count   int
	}

	perHustle := make(map[uuid.UUID]*sums, len(hustles))
	for _, hustle := range hustles {
		perHustle[hustle.ID] = &sums{}
	}

	for _, entry := range entries {
		s, ok := perHustle[entry.HustleID]
		if !ok {
			continue
		}

		s.allTime = s.allTime.Add(entry.Amount)
		s.count++

		if month.Contains(entry.Date) {
			s.monthly = s.monthly.Add(entry.Amount)
		}
	}

	result := make([]HustleStats, 0, len(hustles))
	for _, hustle := range hustles {
		s := perHustle[hustle.ID]
		result = append(result, HustleStats{
			Hustle:       hustle,
			MonthlyTotal: s.monthly,
			AllTimeTotal: s.allTime,
			EntryCount:   s.count,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].MonthlyTotal.GreaterThan(result[j].MonthlyTotal)
	})

	return result
}
