package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdDaysDefault(t *testing.T) {
	t.Setenv("OVERDUE_AFTER_DAYS", "")
	assert.Equal(t, 30, ThresholdDays())
}

func TestThresholdDaysFromEnv(t *testing.T) {
	t.Setenv("OVERDUE_AFTER_DAYS", "45")
	assert.Equal(t, 45, ThresholdDays())
}

func TestThresholdDaysIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("OVERDUE_AFTER_DAYS", "soon")
	assert.Equal(t, 30, ThresholdDays())

	t.Setenv("OVERDUE_AFTER_DAYS", "-3")
	assert.Equal(t, 30, ThresholdDays())
}
