package models

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Hustle is a named income source owned by one user.
//
// Hustles are never deleted for real. Deleting archives them so that
// income entries keep a valid reference and can still resolve the
// hustle's name and color for display.
type Hustle struct {
	DefaultModel
	User     User      `json:"-"`
	UserID   uuid.UUID `gorm:"index"`
	Name     string
	Category string
	Color    string
	Archived bool
}

// Categories is the fixed set of hustle categories.
var Categories = []string{
	"freelance",
	"consulting",
	"ecommerce",
	"content",
	"tutoring",
	"delivery",
	"rideshare",
	"investing",
	"other",
}

// Colors is the fixed palette of hustle colors.
var Colors = []string{
	"#6366f1", // Indigo
	"#8b5cf6", // Violet
	"#ec4899", // Pink
	"#f43f5e", // Rose
	"#f97316", // Orange
	"#eab308", // Yellow
	"#22c55e", // Green
	"#14b8a6", // Teal
	"#06b6d4", // Cyan
	"#3b82f6", // Blue
}

// DefaultColor is used when a hustle is created without a color.
const DefaultColor = "#6366f1"

// DefaultCategory is used when a hustle is created without a category.
const DefaultCategory = "other"

const maxHustleNameLength = 50

var colorPattern = regexp.MustCompile("^#[0-9A-Fa-f]{6}$")

var (
	ErrHustleNameNotUnique   = errors.New("you already have a hustle with this name")
	ErrHustleNameRequired    = errors.New("the hustle name is required")
	ErrHustleNameTooLong     = errors.New("the hustle name must be 50 characters or less")
	ErrHustleCategoryInvalid = errors.New("this hustle category does not exist")
	ErrHustleColorInvalid    = errors.New("the color must be a 6-digit hex value like #6366f1")
)

func (h *Hustle) BeforeSave(_ *gorm.DB) error {
	h.Name = strings.TrimSpace(h.Name)

	if h.Name == "" {
		return ErrHustleNameRequired
	}

	if utf8.RuneCountInString(h.Name) > maxHustleNameLength {
		return ErrHustleNameTooLong
	}

	if h.Category == "" {
		h.Category = DefaultCategory
	}

	if !slices.Contains(Categories, h.Category) {
		return ErrHustleCategoryInvalid
	}

	if h.Color == "" {
		h.Color = DefaultColor
	}

	if !colorPattern.MatchString(h.Color) {
		return ErrHustleColorInvalid
	}

	return nil
}

func (h *Hustle) BeforeCreate(tx *gorm.DB) error {
	_ = h.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Hustle)

	err := h.checkIntegrity(tx, *toSave)
	if err != nil {
		return err
	}

	return checkNameUnique(tx, toSave.UserID, strings.TrimSpace(toSave.Name), h.ID)
}

func (h *Hustle) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Hustle)

	if tx.Statement.Changed("Name") {
		return checkNameUnique(tx, h.UserID, strings.TrimSpace(toSave.Name), h.ID)
	}

	// Un-archiving puts the name back into the active namespace, so it
	// needs the same uniqueness check as a rename
	if tx.Statement.Changed("Archived") && !toSave.Archived {
		return checkNameUnique(tx, h.UserID, h.Name, h.ID)
	}

	return nil
}

// checkIntegrity verifies that the referenced user exists.
func (h *Hustle) checkIntegrity(tx *gorm.DB, toSave Hustle) error {
	return tx.First(&User{}, toSave.UserID).Error
}

// checkNameUnique enforces the name to be unique among the user's
// active hustles. Archived hustles do not block their name, which
// allows re-creating a hustle after archiving it.
func checkNameUnique(tx *gorm.DB, userID uuid.UUID, name string, selfID uuid.UUID) error {
	var count int64
	err := tx.Model(&Hustle{}).
		Where("user_id = ? AND name = ? AND NOT archived AND id != ?", userID, name, selfID).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrHustleNameNotUnique
	}

	return nil
}

// Entries returns all income entries logged against this hustle.
func (h Hustle) Entries(db *gorm.DB) ([]IncomeEntry, error) {
	var entries []IncomeEntry
	err := db.Where(&IncomeEntry{HustleID: h.ID}).Find(&entries).Error
	return entries, err
}
