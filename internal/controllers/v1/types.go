package v1

import (
	"github.com/hustleledger/backend/internal/types"
)

type URIID struct {
	ID types.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-03"` // Year and month in YYYY-MM format
}
