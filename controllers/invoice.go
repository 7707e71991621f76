// controllers/invoice.go
package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"swiftinvoice-backend/config"
	"swiftinvoice-backend/models"
	"swiftinvoice-backend/services"
	"swiftinvoice-backend/utils"
)

// InvoiceItemInput is one entry of the multipart "items" JSON array.
// service_name is free text; it does not have to match a catalog entry.
type InvoiceItemInput struct {
	ServiceName string          `json:"service_name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

const defaultMaxLogoSizeMB = 10

func maxLogoBytes() int64 {
	if env := os.Getenv("MAX_LOGO_SIZE_MB"); env != "" {
		if mb, err := strconv.Atoi(env); err == nil && mb > 0 {
			return int64(mb) << 20
		}
	}
	return defaultMaxLogoSizeMB << 20
}

// CreateInvoice creates an invoice from a multipart form: client_id, items
// (JSON array) and an optional logo image. The invoice row and its items are
// written in a single transaction, so a failed item insert never leaves an
// orphaned invoice behind.
func CreateInvoice(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.PostForm("client_id"))
	if err != nil {
		utils.Respond(c, utils.ValidationError("Invalid or missing client_id"))
		return
	}

	var itemInputs []InvoiceItemInput
	if err := json.Unmarshal([]byte(c.PostForm("items")), &itemInputs); err != nil {
		utils.Respond(c, utils.ValidationError("items must be a JSON array"))
		return
	}

	for _, item := range itemInputs {
		if err := utils.ValidateLineItem(item.ServiceName, item.Quantity, item.Rate); err != nil {
			utils.Respond(c, err)
			return
		}
	}

	var client models.Client
	if err := config.DB.Where("id = ?", clientUUID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Respond(c, utils.ValidationError("Client not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	logoURL, err := handleLogoUpload(c)
	if err != nil {
		utils.Respond(c, err)
		return
	}

	invoiceItems := make([]models.InvoiceItem, 0, len(itemInputs))
	for i, item := range itemInputs {
		invoiceItems = append(invoiceItems, models.InvoiceItem{
			ID:          uuid.New(),
			ServiceName: item.ServiceName,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Position:    i,
		})
	}

	invoice := models.Invoice{
		ID:       uuid.New(),
		ClientID: clientUUID,
		Status:   models.StatusDraft,
		LogoURL:  logoURL,
		Items:    invoiceItems,
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	tx.Commit()

	created, err := loadInvoice(invoice.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load created invoice")
		return
	}

	c.JSON(http.StatusOK, created)
}

// handleLogoUpload validates and stores an uploaded logo, returning its
// public URL. A missing file yields (nil, nil). A rejected file (wrong type,
// too large) is a validation error; a storage failure is logged and the
// invoice proceeds without a logo.
func handleLogoUpload(c *gin.Context) (*string, error) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return nil, nil
	}

	if fileHeader.Size > maxLogoBytes() {
		return nil, utils.ValidationError(fmt.Sprintf("Logo exceeds the %d MB size limit", maxLogoBytes()>>20))
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.Log.Warnw("failed to open uploaded logo", "error", err)
		return nil, nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.Log.Warnw("failed to read uploaded logo", "error", err)
		return nil, nil
	}

	// Sniff the content rather than trusting the declared MIME type.
	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		return nil, utils.ValidationError("Only image files are allowed")
	}

	url, err := config.UploadLogo(data, fileHeader.Filename, kind.MIME.Value)
	if err != nil {
		utils.Log.Warnw("logo upload failed, creating invoice without logo", "error", err)
		return nil, nil
	}
	if url == "" {
		return nil, nil
	}

	return &url, nil
}

// GetInvoices retrieves all invoices joined with their client and items,
// newest first
func GetInvoices(c *gin.Context) {
	invoices := []models.Invoice{}
	if err := config.DB.
		Preload("Client").
		Preload("Items", itemOrder).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// UpdateInvoiceStatusInput defines the PATCH body for a status change
type UpdateInvoiceStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateInvoiceStatus sets the invoice status, rejecting anything outside
// the closed set. The stored status is untouched on rejection.
func UpdateInvoiceStatus(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidStatus(input.Status) {
		utils.Respond(c, utils.ValidationError("Invalid status"))
		return
	}

	var invoice models.Invoice
	if err := config.DB.Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Respond(c, utils.NotFoundError("Invoice not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&invoice).Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	invoice.Status = input.Status
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice deletes an invoice and its line items. Items go first; they
// cannot outlive the invoice that owns them.
func DeleteInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Where("id = ?", invoiceUUID).First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Respond(c, utils.NotFoundError("Invoice not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice items")
		return
	}

	if err := tx.Delete(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	tx.Commit()

	c.Status(http.StatusNoContent)
}

// DownloadInvoice renders the invoice as a PDF and streams it as an
// attachment. The temp file is removed after the response is sent, whether
// or not the send succeeded.
func DownloadInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	invoice, err := loadInvoice(invoiceUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Respond(c, utils.NotFoundError("Invoice not found"))
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	totals, err := services.ComputeTotals(invoice.Items, decimal.Zero)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}

	var logo []byte
	if invoice.LogoURL != nil {
		logo = services.FetchLogo(*invoice.LogoURL)
	}

	ops := services.BuildInvoiceDocument(invoice, totals, logo, services.DefaultLayout())

	pdfPath, err := services.RenderPDF(ops, invoice.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}
	defer services.CleanupPDF(pdfPath)

	c.FileAttachment(pdfPath, fmt.Sprintf("invoice-%s.pdf", invoice.ID))
}

func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func loadInvoice(id uuid.UUID) (models.Invoice, error) {
	var invoice models.Invoice
	err := config.DB.
		Preload("Client").
		Preload("Items", itemOrder).
		Where("id = ?", id).
		First(&invoice).Error
	return invoice, err
}
