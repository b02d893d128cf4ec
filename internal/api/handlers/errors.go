package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"baas-lcos/internal/api/models"
	"baas-lcos/internal/model"
)

// writeModelError maps the model error taxonomy onto HTTP responses.
func writeModelError(c *gin.Context, err error) {
	var (
		missing   *model.MissingParameterError
		malformed *model.MalformedInputError
		invalid   *model.InvalidModelError
	)
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_PARAMETER",
				Message: missing.Error(),
				Details: map[string]interface{}{"key": missing.Key},
			},
		})
	case errors.As(err, &malformed):
		details := map[string]interface{}{"field": malformed.Field}
		if malformed.Row > 0 {
			details["row"] = malformed.Row
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MALFORMED_INPUT",
				Message: malformed.Error(),
				Details: details,
			},
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_MODEL",
				Message: invalid.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EVALUATION_ERROR",
				Message: err.Error(),
			},
		})
	}
}
