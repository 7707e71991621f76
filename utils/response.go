// utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorKind is the closed set of failure categories handlers produce.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindConflict
	KindDependency
	KindInternal
)

// APIError carries a kind and a user-facing message. Respond is the single
// place where kinds become HTTP status codes.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func ValidationError(message string) *APIError {
	return &APIError{Kind: KindValidation, Message: message}
}

func NotFoundError(message string) *APIError {
	return &APIError{Kind: KindNotFound, Message: message}
}

func ConflictError(message string) *APIError {
	return &APIError{Kind: KindConflict, Message: message}
}

func DependencyError(message string) *APIError {
	return &APIError{Kind: KindDependency, Message: message}
}

func InternalError(message string) *APIError {
	return &APIError{Kind: KindInternal, Message: message}
}

// StatusFor maps an error kind to its transport status code.
func StatusFor(kind ErrorKind) int {
	switch kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond converts any error to a JSON error response. Unrecognized errors
// are treated as internal.
func Respond(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		RespondWithError(c, StatusFor(apiErr.Kind), apiErr.Message)
		return
	}
	RespondWithError(c, http.StatusInternalServerError, err.Error())
}

// RespondWithError writes the standard {"error": message} body.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
