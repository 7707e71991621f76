package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"draft", "sent", "paid", "overdue"} {
		assert.True(t, ValidStatus(s), "%s should be valid", s)
	}

	for _, s := range []string{"", "pending", "PAID", "Draft", "cancelled"} {
		assert.False(t, ValidStatus(s), "%s should be invalid", s)
	}
}

func TestValidateLineItem(t *testing.T) {
	assert.NoError(t, ValidateLineItem("Design", 1, decimal.NewFromInt(50)))
	assert.NoError(t, ValidateLineItem("Free tier", 3, decimal.Zero))

	cases := []struct {
		name     string
		service  string
		quantity int
		rate     decimal.Decimal
	}{
		{"empty service name", "", 1, decimal.NewFromInt(5)},
		{"zero quantity", "Design", 0, decimal.NewFromInt(5)},
		{"negative quantity", "Design", -2, decimal.NewFromInt(5)},
		{"negative rate", "Design", 1, decimal.NewFromInt(-5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLineItem(tc.service, tc.quantity, tc.rate)
			require.Error(t, err)

			apiErr, ok := err.(*APIError)
			require.True(t, ok)
			assert.Equal(t, KindValidation, apiErr.Kind)
		})
	}
}
