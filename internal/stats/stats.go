// Package stats computes all derived statistics for the dashboard and the
// hustle overview.
//
// Everything in this package is a pure function over already-materialized
// records: no I/O, no mutation of inputs, no ambient clock. The month that
// statistics are computed for is always passed in explicitly so that results
// are deterministic and two concurrent calls can never interfere.
package stats

import (
	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Hustle is the view of a hustle that statistics are computed over.
type Hustle struct {
	ID       uuid.UUID  `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name     string     `json:"name" example:"Freelance writing"`
	Category string     `json:"category" example:"freelance"`
	Color    string     `json:"color" example:"#6366f1"`
	Created  types.Date `json:"createdOn" example:"2024-01-05"`
}

// Entry is the view of an income entry that statistics are computed over.
//
// The hustle name and color are denormalized onto the entry so that entries
// referencing an archived hustle still resolve for display.
type Entry struct {
	ID          uuid.UUID       `json:"id" example:"d1b4a4a4-0f24-4a13-b0a9-8d4e986e8f44"`
	HustleID    uuid.UUID       `json:"hustleId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	HustleName  string          `json:"hustleName" example:"Freelance writing"`
	HustleColor string          `json:"hustleColor" example:"#6366f1"`
	Amount      decimal.Decimal `json:"amount" example:"125.50"`
	Date        types.Date      `json:"date" example:"2024-03-05"`
	Note        string          `json:"note,omitempty" example:"Blog post for client"`
}

// HustleTotal is the summed amount for one hustle within the month window.
type HustleTotal struct {
	HustleID uuid.UUID       `json:"hustleId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name     string          `json:"name" example:"Freelance writing"`
	Color    string          `json:"color" example:"#6366f1"`
	Total    decimal.Decimal `json:"total" example:"350"`
}

// DashboardStats holds everything the dashboard displays.
type DashboardStats struct {
	MonthlyTotal  decimal.Decimal `json:"monthlyTotal" example:"350"`  // Sum of all entries in the month
	MonthlyGoal   decimal.Decimal `json:"monthlyGoal" example:"1000"`  // The configured monthly goal
	GoalProgress  decimal.Decimal `json:"goalProgress" example:"35"`   // Percentage of the goal reached, capped at 100
	TopHustles    []HustleTotal   `json:"topHustles"`                  // The three hustles with the highest monthly total
	RecentEntries []Entry         `json:"recentEntries"`               // The five most recent entries
}

// HustleStats is a hustle together with its lifetime and monthly statistics.
type HustleStats struct {
	Hustle
	MonthlyTotal decimal.Decimal `json:"monthlyTotal" example:"100"` // Sum of entries within the month window
	AllTimeTotal decimal.Decimal `json:"allTimeTotal" example:"150"` // Sum of all entries, without date bound
	EntryCount   int             `json:"entryCount" example:"2"`     // Number of entries, without date bound
}
