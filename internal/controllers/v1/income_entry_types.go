package v1

import (
	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/models"
	"github.com/hustleledger/backend/internal/stats"
	"github.com/hustleledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeEntryEditable represents all user configurable parameters
type IncomeEntryEditable struct {
	HustleID uuid.UUID       `json:"hustleId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the hustle the income was earned with
	Amount   decimal.Decimal `json:"amount" example:"125.50"`                                 // Amount earned, must be positive
	Date     types.Date      `json:"date" example:"2024-03-05"`                               // Day the income was earned on
	Note     string          `json:"note" example:"Blog post for client" default:""`          // Optional note
}

func (editable IncomeEntryEditable) model(userID uuid.UUID) models.IncomeEntry {
	return models.IncomeEntry{
		UserID:   userID,
		HustleID: editable.HustleID,
		Amount:   editable.Amount,
		Date:     editable.Date,
		Note:     editable.Note,
	}
}

type IncomeEntry struct {
	models.DefaultModel
	IncomeEntryEditable

	// These fields are denormalized from the hustle
	HustleName  string `json:"hustleName" example:"Freelance writing"`
	HustleColor string `json:"hustleColor" example:"#6366f1"`
}

func newIncomeEntry(db *gorm.DB, model models.IncomeEntry) (IncomeEntry, error) {
	// Archived hustles still resolve here
	var hustle models.Hustle
	err := db.First(&hustle, model.HustleID).Error
	if err != nil {
		return IncomeEntry{}, err
	}

	return IncomeEntry{
		DefaultModel: model.DefaultModel,
		IncomeEntryEditable: IncomeEntryEditable{
			HustleID: model.HustleID,
			Amount:   model.Amount,
			Date:     model.Date,
			Note:     model.Note,
		},
		HustleName:  hustle.Name,
		HustleColor: hustle.Color,
	}, nil
}

type IncomeEntryListResponse struct {
	Data  []stats.Entry `json:"data"`                                                          // List of income entries
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeEntryResponse struct {
	Data  *IncomeEntry `json:"data"`                                                          // Data for the income entry
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DaysResponse struct {
	Data  []stats.Day `json:"data"`                                                          // Entries grouped by date
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeEntryQueryFilter struct {
	HustleID types.UUID  `form:"hustle" filterField:"false"` // By ID of the hustle
	Month    types.Month `form:"month" filterField:"false"`  // By month window, inclusive on both ends
}

func (f IncomeEntryQueryFilter) filterSet() stats.FilterSet {
	return stats.FilterSet{
		HustleID: f.HustleID.UUID,
		Month:    f.Month,
	}
}
