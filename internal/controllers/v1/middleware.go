package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hustleledger/backend/internal/config"
)

// contextUser is the gin context key the authenticated user's ID is stored under.
const contextUser = "hustleledger:user"

// Authenticate verifies the bearer token and stores the user ID in the
// request context. Requests without a valid token are rejected before
// any handler runs.
func Authenticate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(status(errNoToken), httpError{
				Error: errNoToken.Error(),
			})
			return
		}

		claims := jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errTokenInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(status(errTokenInvalid), httpError{
				Error: errTokenInvalid.Error(),
			})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(status(errTokenInvalid), httpError{
				Error: errTokenInvalid.Error(),
			})
			return
		}

		c.Set(contextUser, userID)
		c.Next()
	}
}

// currentUser returns the ID of the authenticated user.
//
// It must only be called from handlers behind the Authenticate middleware.
func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUser).(uuid.UUID)
}
