package v1

import (
	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/models"
	"github.com/hustleledger/backend/internal/stats"
	"github.com/hustleledger/backend/internal/types"
)

// HustleEditable represents all user configurable parameters
type HustleEditable struct {
	Name     string `json:"name" example:"Freelance writing" default:""`
	Category string `json:"category" example:"freelance" default:"other"` // One of the fixed hustle categories
	Color    string `json:"color" example:"#6366f1" default:"#6366f1"`    // Hex color for display
	Archived bool   `json:"archived" example:"true" default:"false"`      // Is the hustle archived?
}

func (editable HustleEditable) model(userID uuid.UUID) models.Hustle {
	return models.Hustle{
		UserID:   userID,
		Name:     editable.Name,
		Category: editable.Category,
		Color:    editable.Color,
		Archived: editable.Archived,
	}
}

type Hustle struct {
	models.DefaultModel
	HustleEditable
}

func newHustle(model models.Hustle) Hustle {
	return Hustle{
		DefaultModel: model.DefaultModel,
		HustleEditable: HustleEditable{
			Name:     model.Name,
			Category: model.Category,
			Color:    model.Color,
			Archived: model.Archived,
		},
	}
}

// statsView converts the hustle to the view the statistics are computed over.
func statsView(model models.Hustle) stats.Hustle {
	return stats.Hustle{
		ID:       model.ID,
		Name:     model.Name,
		Category: model.Category,
		Color:    model.Color,
		Created:  types.DateOf(model.CreatedAt),
	}
}

type HustleListResponse struct {
	Data  []Hustle `json:"data"`                                                          // List of hustles
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HustleResponse struct {
	Data  *Hustle `json:"data"`                                                          // Data for the hustle
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HustleStatsResponse struct {
	Data  []stats.HustleStats `json:"data"`                                                          // Hustles with their statistics
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type HustleQueryFilter struct {
	Category string `json:"category" form:"category"`             // By category
	Archived bool   `json:"archived" form:"archived"`             // Include archived instead of active hustles
	Name     string `json:"name" form:"name" filterField:"false"` // By name
}

func (f HustleQueryFilter) model() models.Hustle {
	return models.Hustle{
		Category: f.Category,
		Archived: f.Archived,
	}
}
