package models_test

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/models"
	"github.com/hustleledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestIncomeEntryCreate() {
	user := suite.createTestUser(models.User{})
	hustle := suite.createTestHustle(models.Hustle{UserID: user.ID})

	entry := suite.createTestIncomeEntry(models.IncomeEntry{
		UserID:   user.ID,
		HustleID: hustle.ID,
		Amount:   decimal.NewFromFloat(42.50),
		Date:     types.NewDate(2024, 3, 1),
		Note:     "  Logo design for a local bakery  ",
	})

	assert.Equal(suite.T(), "Logo design for a local bakery", entry.Note)
	assert.True(suite.T(), entry.Amount.Equal(decimal.NewFromFloat(42.50)))
}

func (suite *TestSuiteStandard) TestIncomeEntryAmountNotPositive() {
	user := suite.createTestUser(models.User{})
	hustle := suite.createTestHustle(models.Hustle{UserID: user.ID})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-1)} {
		entry := models.IncomeEntry{
			UserID:   user.ID,
			HustleID: hustle.ID,
			Amount:   amount,
			Date:     types.NewDate(2024, 3, 1),
		}

		err := models.DB.Create(&entry).Error
		assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive, "Amount %s should be rejected", amount)
	}
}

func (suite *TestSuiteStandard) TestIncomeEntryDateRequired() {
	user := suite.createTestUser(models.User{})
	hustle := suite.createTestHustle(models.Hustle{UserID: user.ID})

	entry := models.IncomeEntry{
		UserID:   user.ID,
		HustleID: hustle.ID,
		Amount:   decimal.NewFromFloat(10),
	}

	err := models.DB.Create(&entry).Error
	assert.ErrorIs(suite.T(), err, models.ErrDateRequired)
}

func (suite *TestSuiteStandard) TestIncomeEntryNoteTooLong() {
	user := suite.createTestUser(models.User{})
	hustle := suite.createTestHustle(models.Hustle{UserID: user.ID})

	entry := models.IncomeEntry{
		UserID:   user.ID,
		HustleID: hustle.ID,
		Amount:   decimal.NewFromFloat(10),
		Date:     types.NewDate(2024, 3, 1),
		Note:     strings.Repeat("n", 501),
	}

	err := models.DB.Create(&entry).Error
	assert.ErrorIs(suite.T(), err, models.ErrNoteTooLong)
}

func (suite *TestSuiteStandard) TestIncomeEntryHustleRequired() {
	user := suite.createTestUser(models.User{})

	entry := models.IncomeEntry{
		UserID:   user.ID,
		HustleID: uuid.New(),
		Amount:   decimal.NewFromFloat(10),
		Date:     types.NewDate(2024, 3, 1),
	}

	err := models.DB.Create(&entry).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestIncomeEntryHustleOfOtherUser() {
	user := suite.createTestUser(models.User{Email: "owner@example.com"})
	intruder := suite.createTestUser(models.User{Email: "intruder@example.com"})
	hustle := suite.createTestHustle(models.Hustle{UserID: user.ID})

	entry := models.IncomeEntry{
		UserID:   intruder.ID,
		HustleID: hustle.ID,
		Amount:   decimal.NewFromFloat(10),
		Date:     types.NewDate(2024, 3, 1),
	}

	// A hustle owned by someone else behaves like a missing one
	err := models.DB.Create(&entry).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestIncomeEntryUpdateHustle() {
	user := suite.createTestUser(models.User{})
	hustle := suite.createTestHustle(models.Hustle{UserID: user.ID})
	entry := suite.createTestIncomeEntry(models.IncomeEntry{UserID: user.ID, HustleID: hustle.ID})

	err := models.DB.Model(&entry).Select("HustleID").Updates(models.IncomeEntry{HustleID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	second := suite.createTestHustle(models.Hustle{UserID: user.ID, Name: "Second hustle"})
	err = models.DB.Model(&entry).Select("HustleID").Updates(models.IncomeEntry{HustleID: second.ID}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestIncomeEntryHardDelete() {
	user := suite.createTestUser(models.User{})
	hustle := suite.createTestHustle(models.Hustle{UserID: user.ID})
	entry := suite.createTestIncomeEntry(models.IncomeEntry{UserID: user.ID, HustleID: hustle.ID})

	err := models.DB.Delete(&entry).Error
	require.Nil(suite.T(), err)

	var count int64
	err = models.DB.Model(&models.IncomeEntry{}).Unscoped().Count(&count).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count, "Deleted entries must not linger in the database")
}
