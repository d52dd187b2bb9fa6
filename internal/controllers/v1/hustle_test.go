package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/hustleledger/backend/internal/controllers/v1"
	"github.com/hustleledger/backend/internal/models"
	"github.com/hustleledger/backend/internal/test"
	"github.com/hustleledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestHustleCreate() {
	response := suite.createTestHustle(v1.HustleEditable{Name: "Freelance writing"})
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), "Freelance writing", response.Data.Name)
	assert.Equal(suite.T(), models.DefaultCategory, response.Data.Category)
	assert.Equal(suite.T(), models.DefaultColor, response.Data.Color)
	assert.False(suite.T(), response.Data.Archived)
}

func (suite *TestSuiteStandard) TestHustleCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.HustleEditable
		status   int
		message  string
	}{
		{"Name missing", v1.HustleEditable{Name: "  "}, http.StatusBadRequest, models.ErrHustleNameRequired.Error()},
		{"Category invalid", v1.HustleEditable{Name: "Gigs", Category: "gig-economy"}, http.StatusBadRequest, models.ErrHustleCategoryInvalid.Error()},
		{"Color invalid", v1.HustleEditable{Name: "Gigs", Color: "indigo"}, http.StatusBadRequest, models.ErrHustleColorInvalid.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "/v1/hustles", tt.editable)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.HustleResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Equal(t, tt.message, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestHustleNameConflict() {
	suite.createTestHustle(v1.HustleEditable{Name: "Writing"})

	r := suite.request(http.MethodPost, "/v1/hustles", v1.HustleEditable{Name: "Writing"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.HustleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), models.ErrHustleNameNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestHustleList() {
	suite.createTestHustle(v1.HustleEditable{Name: "Writing"})
	suite.createTestHustle(v1.HustleEditable{Name: "Design"})
	archived := suite.createTestHustle(v1.HustleEditable{Name: "Old paper route"})

	r := suite.request(http.MethodDelete, fmt.Sprintf("/v1/hustles/%s", archived.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Active hustles only, ordered by name
	r = suite.request(http.MethodGet, "/v1/hustles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HustleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Design", response.Data[0].Name)
	assert.Equal(suite.T(), "Writing", response.Data[1].Name)

	// Archived hustles on request
	r = suite.request(http.MethodGet, "/v1/hustles?archived=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Old paper route", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestHustleListFilters() {
	suite.createTestHustle(v1.HustleEditable{Name: "Writing", Category: "freelance"})
	suite.createTestHustle(v1.HustleEditable{Name: "Deliveries", Category: "delivery"})

	r := suite.request(http.MethodGet, "/v1/hustles?category=delivery", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HustleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Deliveries", response.Data[0].Name)

	r = suite.request(http.MethodGet, "/v1/hustles?name=Writing", "")
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Writing", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestHustleGetSingle() {
	hustle := suite.createTestHustle(v1.HustleEditable{Name: "Writing"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing hustle", hustle.Data.ID.String(), http.StatusOK},
		{"No hustle with this ID", "a6e26d2a-e6b1-4c4c-961e-f2da29a305f1", http.StatusNotFound},
		{"Invalid ID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, fmt.Sprintf("/v1/hustles/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestHustleUpdate() {
	hustle := suite.createTestHustle(v1.HustleEditable{Name: "Writing", Category: "freelance"})

	r := suite.request(http.MethodPatch, fmt.Sprintf("/v1/hustles/%s", hustle.Data.ID), map[string]any{
		"color": "#22c55e",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/hustles/%s", hustle.Data.ID), "")
	var response v1.HustleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "#22c55e", response.Data.Color)

	// Fields not in the body stay untouched
	assert.Equal(suite.T(), "Writing", response.Data.Name)
	assert.Equal(suite.T(), "freelance", response.Data.Category)
}

func (suite *TestSuiteStandard) TestHustleRenameConflict() {
	suite.createTestHustle(v1.HustleEditable{Name: "Writing"})
	hustle := suite.createTestHustle(v1.HustleEditable{Name: "Design"})

	r := suite.request(http.MethodPatch, fmt.Sprintf("/v1/hustles/%s", hustle.Data.ID), map[string]any{
		"name": "Writing",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestHustleArchive() {
	hustle := suite.createTestHustle(v1.HustleEditable{Name: "Writing"})
	entry := suite.createTestIncomeEntry(v1.IncomeEntryEditable{
		HustleID: hustle.Data.ID,
		Amount:   decimal.NewFromInt(50),
		Date:     types.NewDate(2024, 3, 5),
	})

	r := suite.request(http.MethodDelete, fmt.Sprintf("/v1/hustles/%s", hustle.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The hustle is still readable
	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/hustles/%s", hustle.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HustleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Archived)

	// Its entries survive and still resolve the hustle name
	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/entries/%s", entry.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var entryResponse v1.IncomeEntryResponse
	test.DecodeResponse(suite.T(), &r, &entryResponse)
	assert.Equal(suite.T(), "Writing", entryResponse.Data.HustleName)

	// The name is free for a new hustle
	suite.createTestHustle(v1.HustleEditable{Name: "Writing"})

	// Which in turn blocks un-archiving the old one
	r = suite.request(http.MethodPatch, fmt.Sprintf("/v1/hustles/%s", hustle.Data.ID), map[string]any{
		"archived": false,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrHustleNameNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestHustleUserIsolation() {
	hustle := suite.createTestHustle(v1.HustleEditable{Name: "Writing"})

	// A second user cannot see the first user's hustle
	other := suite.register("other@example.com", "other-password", "")
	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/hustles/%s", hustle.Data.ID), "", map[string]string{
		"Authorization": "Bearer " + other.Token,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// But may use the same hustle name
	r = test.Request(suite.T(), suite.router, http.MethodPost, "/v1/hustles", v1.HustleEditable{Name: "Writing"}, map[string]string{
		"Authorization": "Bearer " + other.Token,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestHustleOptions() {
	hustle := suite.createTestHustle(v1.HustleEditable{Name: "Writing"})

	r := suite.request(http.MethodOptions, "/v1/hustles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, fmt.Sprintf("/v1/hustles/%s", hustle.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHustleStats() {
	writing := suite.createTestHustle(v1.HustleEditable{Name: "Writing"})
	design := suite.createTestHustle(v1.HustleEditable{Name: "Design"})
	suite.createTestHustle(v1.HustleEditable{Name: "Idle"})

	archived := suite.createTestHustle(v1.HustleEditable{Name: "Retired"})
	r := suite.request(http.MethodDelete, fmt.Sprintf("/v1/hustles/%s", archived.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: writing.Data.ID, Amount: decimal.NewFromInt(200), Date: types.NewDate(2024, 3, 5)})
	suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: writing.Data.ID, Amount: decimal.NewFromInt(150), Date: types.NewDate(2024, 4, 1)})
	suite.createTestIncomeEntry(v1.IncomeEntryEditable{HustleID: design.Data.ID, Amount: decimal.NewFromInt(150), Date: types.NewDate(2024, 3, 10)})

	r = suite.request(http.MethodGet, "/v1/hustles/stats?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HustleStatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Archived hustles are not part of the overview
	require.Len(suite.T(), response.Data, 3)

	// Highest monthly total first, hustles without income last
	assert.Equal(suite.T(), "Writing", response.Data[0].Name)
	assert.True(suite.T(), response.Data[0].MonthlyTotal.Equal(decimal.NewFromInt(200)))
	assert.True(suite.T(), response.Data[0].AllTimeTotal.Equal(decimal.NewFromInt(350)))
	assert.Equal(suite.T(), 2, response.Data[0].EntryCount)

	assert.Equal(suite.T(), "Design", response.Data[1].Name)
	assert.True(suite.T(), response.Data[1].MonthlyTotal.Equal(decimal.NewFromInt(150)))

	assert.Equal(suite.T(), "Idle", response.Data[2].Name)
	assert.True(suite.T(), response.Data[2].MonthlyTotal.IsZero())
	assert.True(suite.T(), response.Data[2].AllTimeTotal.IsZero())
	assert.Equal(suite.T(), 0, response.Data[2].EntryCount)
}

func (suite *TestSuiteStandard) TestHustleStatsInvalidMonth() {
	r := suite.request(http.MethodGet, "/v1/hustles/stats?month=whenever", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
