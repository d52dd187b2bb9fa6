package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hustleledger/backend/internal/config"
	"github.com/hustleledger/backend/internal/httputil"
	"github.com/hustleledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, cfg *config.Config) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register(cfg))

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login(cfg))
}

// @Summary		Register
// @Description	Creates a new user with their profile and returns a bearer token
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201			{object}	AuthResponse
// @Failure		400			{object}	AuthResponse
// @Failure		409			{object}	AuthResponse
// @Failure		500			{object}	AuthResponse
// @Param			credentials	body		RegisterEditable	true	"Credentials"
// @Router			/v1/auth/register [post]
func Register(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable RegisterEditable
		err := httputil.BindData(c, &editable)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AuthResponse{Error: &s})
			return
		}

		hash, err := models.HashPassword(editable.Password)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AuthResponse{Error: &s})
			return
		}

		user := models.User{
			Email:        editable.Email,
			PasswordHash: hash,
		}

		// The user and their profile are created together or not at all
		err = models.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			profile := models.Profile{
				UserID:      user.ID,
				FullName:    editable.FullName,
				Currency:    cfg.Profile.DefaultCurrency,
				MonthlyGoal: decimal.NewFromInt(cfg.Profile.DefaultMonthlyGoal),
			}
			return tx.Create(&profile).Error
		})
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AuthResponse{Error: &s})
			return
		}

		data, err := issueToken(cfg, user)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AuthResponse{Error: &s})
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{Data: &data})
	}
}

// @Summary		Login
// @Description	Verifies the credentials and returns a bearer token
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200			{object}	AuthResponse
// @Failure		400			{object}	AuthResponse
// @Failure		401			{object}	AuthResponse
// @Failure		500			{object}	AuthResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable LoginEditable
		err := httputil.BindData(c, &editable)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AuthResponse{Error: &s})
			return
		}

		// An unknown email answers exactly like a wrong password
		var user models.User
		err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(editable.Email))).Error
		if err != nil {
			if errors.Is(err, models.ErrResourceNotFound) {
				err = models.ErrCredentialsInvalid
			}

			s := err.Error()
			c.JSON(status(err), AuthResponse{Error: &s})
			return
		}

		err = user.CheckPassword(editable.Password)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AuthResponse{Error: &s})
			return
		}

		data, err := issueToken(cfg, user)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AuthResponse{Error: &s})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{Data: &data})
	}
}

// issueToken signs a bearer token for the user.
func issueToken(cfg *config.Config, user models.User) (AuthData, error) {
	expiresAt := time.Now().UTC().Add(cfg.JWT.Expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return AuthData{}, err
	}

	return AuthData{
		Token:     signed,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Email:     user.Email,
	}, nil
}
