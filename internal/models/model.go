// Package models contains the database models and the database lifecycle
// for the hustleledger backend.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources.
//
// There is no gorm soft-delete here on purpose: hustles archive themselves
// through an explicit flag and income entries are removed for real.
type DefaultModel struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	CreatedAt time.Time `json:"createdAt" example:"2024-01-05T19:28:44.491514Z"`   // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-02-17T20:14:01.048145Z"`   // Last time the resource was updated
}

// AfterFind normalizes the timestamps to UTC.
//
// They are stored in UTC already, but reading them back from sqlite
// returns them with a +0000 zone instead.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// BeforeCreate generates the UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	m.ID = uuid.New()
	return nil
}
