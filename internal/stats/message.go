package stats

import "github.com/shopspring/decimal"

// The progress bands, highest threshold first. Band selection returns on
// the first threshold that the progress reaches, which makes the bands
// mutually exclusive.
var bands = []struct {
	threshold decimal.Decimal
	message   string
}{
	{decimal.NewFromInt(100), "You reached your goal, amazing work!"},
	{decimal.NewFromInt(90), "Almost there, time for the final push!"},
	{decimal.NewFromInt(75), "Great progress, keep it up!"},
	{decimal.NewFromInt(50), "Halfway to your goal!"},
	{decimal.NewFromInt(25), "Nice start, the momentum is building!"},
}

// ProgressMessage selects the encouragement message for a goal progress
// percentage.
func ProgressMessage(progress decimal.Decimal) string {
	for _, band := range bands {
		if progress.GreaterThanOrEqual(band.threshold) {
			return band.message
		}
	}

	if progress.IsPositive() {
		return "You are on your way!"
	}

	return "No income logged yet this month."
}
