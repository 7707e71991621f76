package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the validation layer, which rejects bad requests
// before any database access happens.

func invoiceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/invoices", CreateInvoice)
	r.GET("/invoices/:id/download", DownloadInvoice)
	r.PATCH("/invoices/:id/status", UpdateInvoiceStatus)
	r.DELETE("/invoices/:id", DeleteInvoice)
	return r
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestCreateInvoiceRejectsBadClientID(t *testing.T) {
	r := invoiceRouter()

	body, contentType := multipartBody(t, map[string]string{
		"client_id": "not-a-uuid",
		"items":     "[]",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "client_id")
}

func TestCreateInvoiceRejectsMalformedItems(t *testing.T) {
	r := invoiceRouter()

	body, contentType := multipartBody(t, map[string]string{
		"client_id": "5aa91f58-74d0-4f67-9a8e-2f2c2f9c0a11",
		"items":     "{not json",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "items")
}

func TestCreateInvoiceRejectsNegativeRate(t *testing.T) {
	r := invoiceRouter()

	body, contentType := multipartBody(t, map[string]string{
		"client_id": "5aa91f58-74d0-4f67-9a8e-2f2c2f9c0a11",
		"items":     `[{"service_name":"Design","description":"","quantity":1,"rate":-10}]`,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rate")
}

func TestCreateInvoiceRejectsZeroQuantity(t *testing.T) {
	r := invoiceRouter()

	body, contentType := multipartBody(t, map[string]string{
		"client_id": "5aa91f58-74d0-4f67-9a8e-2f2c2f9c0a11",
		"items":     `[{"service_name":"Design","description":"","quantity":0,"rate":10}]`,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "quantity")
}

func TestUpdateInvoiceStatusRejectsInvalidID(t *testing.T) {
	r := invoiceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/invoices/abc/status", strings.NewReader(`{"status":"paid"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateInvoiceStatusRejectsUnknownStatus(t *testing.T) {
	r := invoiceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		"/invoices/5aa91f58-74d0-4f67-9a8e-2f2c2f9c0a11/status",
		strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid status"}`, w.Body.String())
}

func TestUpdateInvoiceStatusRequiresStatusField(t *testing.T) {
	r := invoiceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch,
		"/invoices/5aa91f58-74d0-4f67-9a8e-2f2c2f9c0a11/status",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadInvoiceRejectsInvalidID(t *testing.T) {
	r := invoiceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/not-a-uuid/download", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteInvoiceRejectsInvalidID(t *testing.T) {
	r := invoiceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/invoices/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
