package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/httputil"
	"github.com/hustleledger/backend/internal/models"
	"github.com/hustleledger/backend/internal/stats"
)

// RegisterIncomeEntryRoutes registers the routes for income entries with
// the RouterGroup that is passed.
func RegisterIncomeEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetIncomeEntries)
		r.POST("", CreateIncomeEntry)
	}

	// Entries grouped by day
	{
		r.OPTIONS("/days", httputil.OptionsGet)
		r.GET("/days", GetIncomeEntryDays)
	}

	// Income entry with ID
	{
		r.OPTIONS("/:id", OptionsIncomeEntryDetail)
		r.GET("/:id", GetIncomeEntry)
		r.PATCH("/:id", UpdateIncomeEntry)
		r.DELETE("/:id", DeleteIncomeEntry)
	}
}

// getIncomeEntry fetches an income entry by ID, scoped to the
// authenticated user.
func getIncomeEntry(c *gin.Context) (models.IncomeEntry, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.IncomeEntry{}, err
	}

	var entry models.IncomeEntry
	err = models.DB.First(&entry, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		return models.IncomeEntry{}, err
	}

	return entry, nil
}

// entryStatsViews loads all income entries of the user, most recent first,
// as the views the stats package computes over. The hustle name and color
// are denormalized onto every entry, archived hustles included.
func entryStatsViews(userID uuid.UUID) ([]stats.Entry, error) {
	var entries []models.IncomeEntry
	err := models.DB.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	var hustles []models.Hustle
	err = models.DB.Where("user_id = ?", userID).Find(&hustles).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Hustle, len(hustles))
	for _, hustle := range hustles {
		byID[hustle.ID] = hustle
	}

	views := make([]stats.Entry, 0, len(entries))
	for _, entry := range entries {
		view := stats.Entry{
			ID:       entry.ID,
			HustleID: entry.HustleID,
			Amount:   entry.Amount,
			Date:     entry.Date,
			Note:     entry.Note,
		}

		if hustle, ok := byID[entry.HustleID]; ok {
			view.HustleName = hustle.Name
			view.HustleColor = hustle.Color
		}

		views = append(views, view)
	}

	return views, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			IncomeEntries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [options]
func OptionsIncomeEntryDetail(c *gin.Context) {
	_, err := getIncomeEntry(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create income entry
// @Description	Creates a new income entry
// @Tags			IncomeEntries
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeEntryResponse
// @Failure		400		{object}	IncomeEntryResponse
// @Failure		404		{object}	IncomeEntryResponse
// @Failure		500		{object}	IncomeEntryResponse
// @Param			entry	body		IncomeEntryEditable	true	"IncomeEntry"
// @Router			/v1/entries [post]
func CreateIncomeEntry(c *gin.Context) {
	var editable IncomeEntryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	entry := editable.model(currentUser(c))

	err = models.DB.Create(&entry).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	data, err := newIncomeEntry(models.DB, entry)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, IncomeEntryResponse{Data: &data})
}

// @Summary		Get income entries
// @Description	Returns income entries, most recent first, with the hustle name and color on every row
// @Tags			IncomeEntries
// @Produce		json
// @Success		200	{object}	IncomeEntryListResponse
// @Failure		400	{object}	IncomeEntryListResponse
// @Failure		500	{object}	IncomeEntryListResponse
// @Router			/v1/entries [get]
// @Param			hustle	query	string	false	"Filter by hustle ID"
// @Param			month	query	string	false	"Filter by month in YYYY-MM format"
func GetIncomeEntries(c *gin.Context) {
	var filter IncomeEntryQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryListResponse{Error: &s})
		return
	}

	views, err := entryStatsViews(currentUser(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeEntryListResponse{
		Data: stats.Filter(views, filter.filterSet()),
	})
}

// @Summary		Get income entries by day
// @Description	Returns income entries grouped by date, most recent first
// @Tags			IncomeEntries
// @Produce		json
// @Success		200	{object}	DaysResponse
// @Failure		400	{object}	DaysResponse
// @Failure		500	{object}	DaysResponse
// @Router			/v1/entries/days [get]
// @Param			hustle	query	string	false	"Filter by hustle ID"
// @Param			month	query	string	false	"Filter by month in YYYY-MM format"
func GetIncomeEntryDays(c *gin.Context) {
	var filter IncomeEntryQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DaysResponse{Error: &s})
		return
	}

	views, err := entryStatsViews(currentUser(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DaysResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, DaysResponse{
		Data: stats.GroupByDate(stats.Filter(views, filter.filterSet())),
	})
}

// @Summary		Get income entry
// @Description	Returns a specific income entry
// @Tags			IncomeEntries
// @Produce		json
// @Success		200	{object}	IncomeEntryResponse
// @Failure		400	{object}	IncomeEntryResponse
// @Failure		404	{object}	IncomeEntryResponse
// @Failure		500	{object}	IncomeEntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [get]
func GetIncomeEntry(c *gin.Context) {
	entry, err := getIncomeEntry(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	data, err := newIncomeEntry(models.DB, entry)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeEntryResponse{Data: &data})
}

// @Summary		Update income entry
// @Description	Update an existing income entry. Only values to be updated need to be specified.
// @Tags			IncomeEntries
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeEntryResponse
// @Failure		400		{object}	IncomeEntryResponse
// @Failure		404		{object}	IncomeEntryResponse
// @Failure		500		{object}	IncomeEntryResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			entry	body		IncomeEntryEditable	true	"IncomeEntry"
// @Router			/v1/entries/{id} [patch]
func UpdateIncomeEntry(c *gin.Context) {
	entry, err := getIncomeEntry(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEntryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	var data IncomeEntryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	err = models.DB.Model(&entry).Select("", updateFields...).Updates(data.model(entry.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	r, err := newIncomeEntry(models.DB, entry)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeEntryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeEntryResponse{Data: &r})
}

// @Summary		Delete income entry
// @Description	Deletes the income entry. Unlike hustles, entries are removed for good.
// @Tags			IncomeEntries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [delete]
func DeleteIncomeEntry(c *gin.Context) {
	entry, err := getIncomeEntry(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
