package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hustleledger/backend/internal/httputil"
	"github.com/hustleledger/backend/internal/models"
	"github.com/hustleledger/backend/internal/stats"
	"github.com/hustleledger/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterHustleRoutes registers the routes for hustles with
// the RouterGroup that is passed.
func RegisterHustleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetHustles)
		r.POST("", CreateHustle)
	}

	// Statistics for all hustles
	{
		r.OPTIONS("/stats", httputil.OptionsGet)
		r.GET("/stats", GetHustleStats)
	}

	// Hustle with ID
	{
		r.OPTIONS("/:id", OptionsHustleDetail)
		r.GET("/:id", GetHustle)
		r.PATCH("/:id", UpdateHustle)
		r.DELETE("/:id", DeleteHustle)
	}
}

// getHustle fetches a hustle by ID, scoped to the authenticated user.
//
// A hustle owned by another user answers exactly like a missing one.
func getHustle(c *gin.Context) (models.Hustle, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Hustle{}, err
	}

	var hustle models.Hustle
	err = models.DB.First(&hustle, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).Error
	if err != nil {
		return models.Hustle{}, err
	}

	return hustle, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Hustles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/hustles/{id} [options]
func OptionsHustleDetail(c *gin.Context) {
	_, err := getHustle(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create hustle
// @Description	Creates a new hustle
// @Tags			Hustles
// @Accept			json
// @Produce		json
// @Success		201		{object}	HustleResponse
// @Failure		400		{object}	HustleResponse
// @Failure		409		{object}	HustleResponse
// @Failure		500		{object}	HustleResponse
// @Param			hustle	body		HustleEditable	true	"Hustle"
// @Router			/v1/hustles [post]
func CreateHustle(c *gin.Context) {
	var editable HustleEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleResponse{Error: &s})
		return
	}

	hustle := editable.model(currentUser(c))

	err = models.DB.Create(&hustle).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleResponse{Error: &s})
		return
	}

	data := newHustle(hustle)
	c.JSON(http.StatusCreated, HustleResponse{Data: &data})
}

// @Summary		Get hustles
// @Description	Returns a list of hustles. Without the archived parameter, only active hustles are returned.
// @Tags			Hustles
// @Produce		json
// @Success		200	{object}	HustleListResponse
// @Failure		400	{object}	HustleListResponse
// @Failure		500	{object}	HustleListResponse
// @Router			/v1/hustles [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			category	query	string	false	"Filter by category"
// @Param			archived	query	bool	false	"Return archived instead of active hustles"
func GetHustles(c *gin.Context) {
	var filter HustleQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Where("user_id = ?", currentUser(c)).
		Order("name ASC").
		Where(&filterModel, queryFields...)

	// Active hustles only, unless archived ones are requested explicitly
	if !slices.Contains(setFields, "Archived") {
		q = q.Where("NOT archived")
	}

	if slices.Contains(setFields, "Name") {
		q = q.Where("name = ?", filter.Name)
	}

	var hustles []models.Hustle
	err := q.Find(&hustles).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleListResponse{Error: &s})
		return
	}

	data := make([]Hustle, 0, len(hustles))
	for _, hustle := range hustles {
		data = append(data, newHustle(hustle))
	}

	c.JSON(http.StatusOK, HustleListResponse{Data: data})
}

// @Summary		Get hustle statistics
// @Description	Returns all active hustles with their lifetime and monthly statistics, ordered by monthly total
// @Tags			Hustles
// @Produce		json
// @Success		200	{object}	HustleStatsResponse
// @Failure		400	{object}	HustleStatsResponse
// @Failure		500	{object}	HustleStatsResponse
// @Param			month	query	string	false	"Month to compute the monthly totals for, defaults to the current month"
// @Router			/v1/hustles/stats [get]
func GetHustleStats(c *gin.Context) {
	var query QueryMonth
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleStatsResponse{Error: &s})
		return
	}

	// The month the statistics are computed for is fixed here, the stats
	// package itself never reads the clock
	month := query.Month
	if month.IsZero() {
		month = types.MonthOf(time.Now().UTC())
	}

	userID := currentUser(c)

	var hustles []models.Hustle
	err = models.DB.
		Where("user_id = ? AND NOT archived", userID).
		Order("name ASC").
		Find(&hustles).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleStatsResponse{Error: &s})
		return
	}

	entries, err := entryStatsViews(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleStatsResponse{Error: &s})
		return
	}

	views := make([]stats.Hustle, 0, len(hustles))
	for _, hustle := range hustles {
		views = append(views, statsView(hustle))
	}

	c.JSON(http.StatusOK, HustleStatsResponse{Data: stats.ForHustles(views, entries, month)})
}

// @Summary		Get hustle
// @Description	Returns a specific hustle
// @Tags			Hustles
// @Produce		json
// @Success		200	{object}	HustleResponse
// @Failure		400	{object}	HustleResponse
// @Failure		404	{object}	HustleResponse
// @Failure		500	{object}	HustleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/hustles/{id} [get]
func GetHustle(c *gin.Context) {
	hustle, err := getHustle(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleResponse{Error: &s})
		return
	}

	data := newHustle(hustle)
	c.JSON(http.StatusOK, HustleResponse{Data: &data})
}

// @Summary		Update hustle
// @Description	Update an existing hustle. Only values to be updated need to be specified.
// @Tags			Hustles
// @Accept			json
// @Produce		json
// @Success		200		{object}	HustleResponse
// @Failure		400		{object}	HustleResponse
// @Failure		404		{object}	HustleResponse
// @Failure		409		{object}	HustleResponse
// @Failure		500		{object}	HustleResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			hustle	body		HustleEditable	true	"Hustle"
// @Router			/v1/hustles/{id} [patch]
func UpdateHustle(c *gin.Context) {
	hustle, err := getHustle(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, HustleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleResponse{Error: &s})
		return
	}

	var data HustleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleResponse{Error: &s})
		return
	}

	err = models.DB.Model(&hustle).Select("", updateFields...).Updates(data.model(hustle.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HustleResponse{Error: &s})
		return
	}

	r := newHustle(hustle)
	c.JSON(http.StatusOK, HustleResponse{Data: &r})
}

// @Summary		Archive hustle
// @Description	Archives the hustle. Its income entries are kept and it can still be read with the archived filter.
// @Tags			Hustles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/hustles/{id} [delete]
func DeleteHustle(c *gin.Context) {
	hustle, err := getHustle(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Hustles are archived, never removed, so that entries keep resolving
	err = models.DB.Model(&hustle).Select("Archived").Updates(models.Hustle{Archived: true}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
