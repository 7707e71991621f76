// utils/validation.go
package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var validStatuses = []string{"draft", "sent", "paid", "overdue"}

// ValidStatus reports whether s belongs to the closed invoice status set.
func ValidStatus(s string) bool {
	for _, v := range validStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidateLineItem checks the bounds on a line item before it reaches
// business logic: quantity must be a positive integer, rate non-negative.
func ValidateLineItem(serviceName string, quantity int, rate decimal.Decimal) error {
	if serviceName == "" {
		return ValidationError("item service_name is required")
	}
	if quantity < 1 {
		return ValidationError(fmt.Sprintf("item quantity must be at least 1, got %d", quantity))
	}
	if rate.IsNegative() {
		return ValidationError(fmt.Sprintf("item rate must not be negative, got %s", rate.String()))
	}
	return nil
}
