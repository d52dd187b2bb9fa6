package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/currency"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Profile holds the per-user settings: display name, preferred currency
// and the monthly income goal. Every user has exactly one.
type Profile struct {
	DefaultModel
	User                User      `json:"-"`
	UserID              uuid.UUID `gorm:"uniqueIndex"`
	FullName            string
	Currency            string          // Code from the supported-currency table
	MonthlyGoal         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	OnboardingCompleted bool
}

var (
	ErrProfileExists        = errors.New("the user already has a profile")
	ErrCurrencyNotSupported = errors.New("this currency is not supported")
	ErrMonthlyGoalNegative  = errors.New("the monthly goal must not be negative")
)

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.FullName = strings.TrimSpace(p.FullName)

	if p.Currency == "" {
		p.Currency = "USD"
	}

	if !currency.Supported(p.Currency) {
		return ErrCurrencyNotSupported
	}

	if p.MonthlyGoal.IsNegative() {
		return ErrMonthlyGoalNegative
	}

	return nil
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Profile)
	return p.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that the referenced user exists.
func (p *Profile) checkIntegrity(tx *gorm.DB, toSave Profile) error {
	return tx.First(&User{}, toSave.UserID).Error
}
