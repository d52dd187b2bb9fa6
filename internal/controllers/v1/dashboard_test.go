package v1_test

import (
	"net/http"

	v1 "github.com/hustleledger/backend/internal/controllers/v1"
	"github.com/hustleledger/backend/internal/test"
	"github.com/hustleledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) setMonthlyGoal(goal int64) {
	r := suite.request(http.MethodPatch, "/v1/profile", map[string]any{
		"monthlyGoal": goal,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) getDashboard(url string) v1.DashboardData {
	r := suite.request(http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestDashboard() {
	suite.setMonthlyGoal(1000)

	writing := suite.createTestHustle(v1.HustleEditable{Name: "Writing"})
	design := suite.createTestHustle(v1.HustleEditable{Name: "Design"})

	suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: writing.Data.ID, Amount: decimal.NewFromInt(200), Date: types.NewDate(2024, 3, 5)})
	suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: design.Data.ID, Amount: decimal.NewFromInt(150), Date: types.NewDate(2024, 3, 10)})

	// Neighboring months must not leak into the window
	suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: writing.Data.ID, Amount: decimal.NewFromInt(500), Date: types.NewDate(2024, 2, 28)})
	suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: design.Data.ID, Amount: decimal.NewFromInt(500), Date: types.NewDate(2024, 4, 1)})

	data := suite.getDashboard("/v1/dashboard?month=2024-03")

	assert.Equal(suite.T(), types.NewMonth(2024, 3), data.Month)
	assert.True(suite.T(), data.MonthlyTotal.Equal(decimal.NewFromInt(350)), "monthly total is %s", data.MonthlyTotal)
	assert.True(suite.T(), data.MonthlyGoal.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), data.GoalProgress.Equal(decimal.NewFromInt(35)), "goal progress is %s", data.GoalProgress)
	assert.Equal(suite.T(), "Nice start, the momentum is building!", data.Message)

	assert.Equal(suite.T(), "USD", data.Currency)
	assert.Equal(suite.T(), "$", data.CurrencySymbol)
	assert.Equal(suite.T(), "$350.00", data.MonthlyTotalFormatted)
	assert.Equal(suite.T(), "$1,000.00", data.MonthlyGoalFormatted)

	require.Len(suite.T(), data.TopHustles, 2)
	assert.Equal(suite.T(), "Writing", data.TopHustles[0].Name)
	assert.Equal(suite.T(), "Design", data.TopHustles[1].Name)
	assert.True(suite.T(), data.TopHustles[0].Total.Equal(decimal.NewFromInt(200)))

	// Recent entries come from the month window, not the full history
	require.Len(suite.T(), data.RecentEntries, 2)
	assert.Equal(suite.T(), types.NewDate(2024, 3, 10), data.RecentEntries[0].Date)
	assert.Equal(suite.T(), types.NewDate(2024, 3, 5), data.RecentEntries[1].Date)
}

func (suite *TestSuiteStandard) TestDashboardTopHustlesCapped() {
	hustles := []struct {
		name   string
		amount int64
	}{
		{"Writing", 200},
		{"Design", 150},
		{"Tutoring", 100},
		{"Photos", 50},
	}

	for _, h := range hustles {
		created := suite.createTestHustle(v1.HustleEditable{Name: h.name})
		suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: created.Data.ID, Amount: decimal.NewFromInt(h.amount), Date: types.NewDate(2024, 3, 5)})
	}

	data := suite.getDashboard("/v1/dashboard?month=2024-03")

	require.Len(suite.T(), data.TopHustles, 3)
	assert.Equal(suite.T(), "Writing", data.TopHustles[0].Name)
	assert.Equal(suite.T(), "Design", data.TopHustles[1].Name)
	assert.Equal(suite.T(), "Tutoring", data.TopHustles[2].Name)
}

func (suite *TestSuiteStandard) TestDashboardGoalReached() {
	suite.setMonthlyGoal(100)

	writing := suite.createTestHustle(v1.HustleEditable{Name: "Writing"})
	suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: writing.Data.ID, Amount: decimal.NewFromInt(250), Date: types.NewDate(2024, 3, 5)})

	data := suite.getDashboard("/v1/dashboard?month=2024-03")

	// Progress is capped at 100 even when the goal is exceeded
	assert.True(suite.T(), data.GoalProgress.Equal(decimal.NewFromInt(100)), "goal progress is %s", data.GoalProgress)
	assert.Equal(suite.T(), "You reached your goal, amazing work!", data.Message)
}

func (suite *TestSuiteStandard) TestDashboardWithoutGoal() {
	writing := suite.createTestHustle(v1.HustleEditable{Name: "Writing"})
	suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: writing.Data.ID, Amount: decimal.NewFromInt(50), Date: types.NewDate(2024, 3, 5)})

	data := suite.getDashboard("/v1/dashboard?month=2024-03")

	// A zero goal disables goal tracking
	assert.True(suite.T(), data.GoalProgress.IsZero())
	assert.True(suite.T(), data.MonthlyTotal.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestDashboardEmptyMonth() {
	suite.setMonthlyGoal(1000)

	data := suite.getDashboard("/v1/dashboard?month=2024-03")

	assert.True(suite.T(), data.MonthlyTotal.IsZero())
	assert.True(suite.T(), data.GoalProgress.IsZero())
	assert.Equal(suite.T(), "No income logged yet this month.", data.Message)
	assert.Empty(suite.T(), data.TopHustles)
	assert.Empty(suite.T(), data.RecentEntries)
}

func (suite *TestSuiteStandard) TestDashboardInvalidMonth() {
	r := suite.request(http.MethodGet, "/v1/dashboard?month=soon", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDashboardOptions() {
	r := suite.request(http.MethodOptions, "/v1/dashboard", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
