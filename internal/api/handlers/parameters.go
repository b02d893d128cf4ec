package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baas-lcos/internal/api/models"
	"baas-lcos/internal/model"
)

// ListParameters handles GET /api/v1/parameters
func ListParameters(c *gin.Context) {
	params := make([]models.ParameterInfo, 0, len(model.RequiredParameters))
	for _, p := range model.RequiredParameters {
		params = append(params, models.ParameterInfo{
			Name:        p.Name,
			Unit:        p.Unit,
			Description: p.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"parameters": params})
}
