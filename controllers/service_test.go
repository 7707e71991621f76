package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serviceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/services", CreateService)
	return r
}

func TestCreateServiceRequiresDescription(t *testing.T) {
	r := serviceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(`{"rate":25}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateServiceRejectsNegativeRate(t *testing.T) {
	r := serviceRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/services", strings.NewReader(`{"description":"Design","rate":-1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "negative")
}
