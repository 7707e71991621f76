package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2025, time.June, 15, 17, 42, 3, 500, time.UTC)
	got := BeginningOfDay(in)

	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), got)
}
