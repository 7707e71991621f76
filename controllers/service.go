// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"swiftinvoice-backend/config"
	"swiftinvoice-backend/models"
	"swiftinvoice-backend/utils"
)

// CreateServiceInput defines the expected JSON structure for creating a
// catalog service. Rate may legitimately be zero, so the bound is checked
// by hand instead of a binding tag.
type CreateServiceInput struct {
	Description string          `json:"description" binding:"required"`
	Rate        decimal.Decimal `json:"rate"`
}

// CreateService creates a new catalog service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Rate.IsNegative() {
		utils.Respond(c, utils.ValidationError("Service rate must not be negative"))
		return
	}

	service := models.Service{
		ID:          uuid.New(),
		Description: input.Description,
		Rate:        input.Rate,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the service catalog
func GetServices(c *gin.Context) {
	services := []models.Service{}
	if err := config.DB.Order("created_at DESC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}
