package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hustleledger/backend/internal/currency"
	"github.com/hustleledger/backend/internal/httputil"
	"github.com/hustleledger/backend/internal/models"
	"github.com/hustleledger/backend/internal/stats"
	"github.com/hustleledger/backend/internal/types"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetDashboard)
}

type DashboardData struct {
	stats.DashboardStats
	Month   types.Month `json:"month" example:"2024-03"`                 // Month the dashboard is computed for
	Message string      `json:"message" example:"Halfway to your goal!"` // Progress message for the goal band

	// Formatting information from the profile
	Currency              string `json:"currency" example:"USD"`
	CurrencySymbol        string `json:"currencySymbol" example:"$"`
	MonthlyTotalFormatted string `json:"monthlyTotalFormatted" example:"$350.00"`
	MonthlyGoalFormatted  string `json:"monthlyGoalFormatted" example:"$1,000.00"`
}

type DashboardResponse struct {
	Data  *DashboardData `json:"data"`                                                          // The dashboard
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Get dashboard
// @Description	Returns the dashboard for a month: total, goal progress with message, top hustles and recent entries
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		404	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Param			month	query	string	false	"Month in YYYY-MM format, defaults to the current month"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var query QueryMonth
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	// The evaluation month is fixed at the boundary, everything below
	// is deterministic
	month := query.Month
	if month.IsZero() {
		month = types.MonthOf(time.Now().UTC())
	}

	userID := currentUser(c)

	var profile models.Profile
	err = models.DB.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	views, err := entryStatsViews(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	// Recent entries are taken from the month window, not from the full
	// history, so a dashboard for March never shows an April entry
	monthEntries := stats.Filter(views, stats.FilterSet{Month: month})
	dashboard := stats.Dashboard(monthEntries, profile.MonthlyGoal)

	data := DashboardData{
		DashboardStats:        dashboard,
		Month:                 month,
		Message:               stats.ProgressMessage(dashboard.GoalProgress),
		Currency:              profile.Currency,
		CurrencySymbol:        currency.Symbol(profile.Currency),
		MonthlyTotalFormatted: currency.Format(dashboard.MonthlyTotal, profile.Currency),
		MonthlyGoalFormatted:  currency.Format(dashboard.MonthlyGoal, profile.Currency),
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
