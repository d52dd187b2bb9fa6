package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hustleledger/backend/internal/currency"
	"github.com/hustleledger/backend/internal/httputil"
	"github.com/hustleledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)
}

// ProfileEditable represents all user configurable parameters
type ProfileEditable struct {
	FullName            string          `json:"fullName" example:"Jamie Doe" default:""`
	Currency            string          `json:"currency" example:"USD" default:"USD"`    // Code from the supported-currency table
	MonthlyGoal         decimal.Decimal `json:"monthlyGoal" example:"1000" default:"0"`  // Income goal per month, 0 disables goal tracking
	OnboardingCompleted bool            `json:"onboardingCompleted" example:"true" default:"false"`
}

func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		FullName:            editable.FullName,
		Currency:            editable.Currency,
		MonthlyGoal:         editable.MonthlyGoal,
		OnboardingCompleted: editable.OnboardingCompleted,
	}
}

type Profile struct {
	models.DefaultModel
	ProfileEditable

	// These fields are computed
	CurrencySymbol string `json:"currencySymbol" example:"$"` // Symbol for the profile's currency
}

func newProfile(model models.Profile) Profile {
	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			FullName:            model.FullName,
			Currency:            model.Currency,
			MonthlyGoal:         model.MonthlyGoal,
			OnboardingCompleted: model.OnboardingCompleted,
		},
		CurrencySymbol: currency.Symbol(model.Currency),
	}
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                                          // Data for the profile
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Get profile
// @Description	Returns the profile of the authenticated user
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		404	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	var profile models.Profile
	err := models.DB.First(&profile, "user_id = ?", currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	data := newProfile(profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Updates the profile. Only values to be updated need to be specified.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		404		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func UpdateProfile(c *gin.Context) {
	var profile models.Profile
	err := models.DB.First(&profile, "user_id = ?", currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	var data ProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	err = models.DB.Model(&profile).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	r := newProfile(profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &r})
}
