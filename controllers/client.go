// controllers/client.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"swiftinvoice-backend/config"
	"swiftinvoice-backend/models"
	"swiftinvoice-backend/utils"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Company *string `json:"company"`
}

// CreateClient creates a new client
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client := models.Client{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients, newest first
func GetClients(c *gin.Context) {
	clients := []models.Client{}
	if err := config.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.Where("id = ?", clientUUID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Respond(c, utils.NotFoundError("Client not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Company != nil {
		client.Company = *input.Company
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient deletes a client. Clients referenced by invoices cannot be
// deleted; the attempt is rejected as a referential conflict.
func DeleteClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.Where("id = ?", clientUUID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Respond(c, utils.NotFoundError("Client not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var invoiceCount int64
	if err := config.DB.Model(&models.Invoice{}).
		Where("client_id = ?", clientUUID).
		Count(&invoiceCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if invoiceCount > 0 {
		utils.Respond(c, utils.ConflictError("Cannot delete client with existing invoices"))
		return
	}

	if err := config.DB.Delete(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	c.Status(http.StatusNoContent)
}
