package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"baas-lcos/internal/api/models"
	"baas-lcos/internal/logger"
)

// ErrorHandler recovers from panics, logs them and returns INTERNAL_ERROR.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NopLogger{}
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)

		message := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			message = s
		} else if err, ok := recovered.(error); ok {
			message = fmt.Sprintf("unexpected error: %v", err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
