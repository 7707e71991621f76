// services/totals.go
package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"swiftinvoice-backend/models"
	"swiftinvoice-backend/utils"
)

// Totals holds everything derived from an invoice's line items. Nothing in
// here is ever persisted; it is recomputed from the items on every use.
type Totals struct {
	// LineAmounts is quantity x rate per item, in item order.
	LineAmounts []decimal.Decimal
	Subtotal    decimal.Decimal
	TaxRate     decimal.Decimal // percentage, e.g. 10 for 10%
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// ComputeTotals derives per-line amounts and the subtotal/tax/total for an
// ordered item list. An empty list yields zero totals, not an error.
// Negative quantities or rates are rejected.
func ComputeTotals(items []models.InvoiceItem, taxRate decimal.Decimal) (Totals, error) {
	totals := Totals{
		LineAmounts: make([]decimal.Decimal, 0, len(items)),
		Subtotal:    decimal.Zero,
		TaxRate:     taxRate,
	}

	for i, item := range items {
		if item.Quantity < 0 {
			return Totals{}, utils.ValidationError(fmt.Sprintf("item %d has negative quantity %d", i, item.Quantity))
		}
		if item.Rate.IsNegative() {
			return Totals{}, utils.ValidationError(fmt.Sprintf("item %d has negative rate %s", i, item.Rate.String()))
		}

		amount := item.Amount()
		totals.LineAmounts = append(totals.LineAmounts, amount)
		totals.Subtotal = totals.Subtotal.Add(amount)
	}

	totals.Tax = totals.Subtotal.Mul(taxRate).Div(decimal.NewFromInt(100))
	totals.Total = totals.Subtotal.Add(totals.Tax)

	return totals, nil
}
