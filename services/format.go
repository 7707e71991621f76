// services/format.go
package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fixed locale/currency for the whole document. Rounding to two digits
// happens here and nowhere else; totals are accumulated as exact decimals.
var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as a grouped USD string, e.g. "$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)

	// Amounts are stored as decimal(10,2), so the integer part fits int64;
	// anything beyond that is formatted ungrouped rather than mangled.
	grouped := parts[0]
	if whole, err := strconv.ParseInt(parts[0], 10, 64); err == nil {
		grouped = currencyPrinter.Sprintf("%d", whole)
	}

	formatted := "$" + grouped + "." + parts[1]
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatDate renders a timestamp as an en-US short date, e.g. "3/14/2025".
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}
