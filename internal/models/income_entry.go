package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeEntry is a single dated earning attributed to a hustle.
//
// Entries are hard-deleted on removal, unlike hustles.
type IncomeEntry struct {
	DefaultModel
	User     User            `json:"-"`
	UserID   uuid.UUID       `gorm:"index"`
	Hustle   Hustle          `json:"-"`
	HustleID uuid.UUID       `gorm:"index"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date     types.Date
	Note     string
}

const maxNoteLength = 500

var (
	ErrAmountNotPositive = errors.New("the amount must be larger than zero")
	ErrDateRequired      = errors.New("the date is required")
	ErrNoteTooLong       = errors.New("the note must be 500 characters or less")
)

func (e *IncomeEntry) BeforeSave(_ *gorm.DB) error {
	e.Note = strings.TrimSpace(e.Note)

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if e.Date.IsZero() {
		return ErrDateRequired
	}

	if utf8.RuneCountInString(e.Note) > maxNoteLength {
		return ErrNoteTooLong
	}

	return nil
}

func (e *IncomeEntry) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*IncomeEntry)
	return e.checkIntegrity(tx, toSave.UserID, toSave.HustleID)
}

func (e *IncomeEntry) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("HustleID") {
		toSave := tx.Statement.Dest.(IncomeEntry)
		return e.checkIntegrity(tx, e.UserID, toSave.HustleID)
	}

	return nil
}

// checkIntegrity verifies that the referenced hustle exists and belongs
// to the same user. A hustle of another user answers exactly like a
// missing one.
func (e *IncomeEntry) checkIntegrity(tx *gorm.DB, userID, hustleID uuid.UUID) error {
	return tx.Where("id = ? AND user_id = ?", hustleID, userID).First(&Hustle{}).Error
}
