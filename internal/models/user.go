package models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account that can log in. All other resources belong to
// exactly one user.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

var (
	ErrEmailNotUnique      = errors.New("an account with this email address already exists")
	ErrEmailInvalid        = errors.New("the email address is not valid")
	ErrPasswordTooShort    = errors.New("the password must be at least 6 characters")
	ErrCredentialsInvalid  = errors.New("the email or password is incorrect")
	ErrPasswordHashMissing = errors.New("the user has no password set")
)

// MinPasswordLength is the minimum number of characters for passwords.
const MinPasswordLength = 6

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if !strings.Contains(u.Email, "@") {
		return ErrEmailInvalid
	}

	if u.PasswordHash == "" {
		return ErrPasswordHashMissing
	}

	return nil
}

// HashPassword returns the bcrypt hash for a password.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword verifies a password against the stored hash.
// The error is always ErrCredentialsInvalid so that callers cannot
// distinguish a wrong password from other verification failures.
func (u User) CheckPassword(password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	if err != nil {
		return ErrCredentialsInvalid
	}

	return nil
}

// Profile returns the user's profile.
func (u User) Profile(db *gorm.DB) (Profile, error) {
	var profile Profile
	err := db.Where(&Profile{UserID: u.ID}).First(&profile).Error
	return profile, err
}
