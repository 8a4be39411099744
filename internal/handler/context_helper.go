package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Justcode790/UniSeat-backend/internal/middleware"
	"github.com/Justcode790/UniSeat-backend/internal/models"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return nil
	}
	return claims
}

// queryInt parses an optional integer query parameter. A missing value yields 0.
func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, key+" must be a number")
	}
	return v, nil
}
