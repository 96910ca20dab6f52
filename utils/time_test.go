package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineBookingDate(t *testing.T) {
	assert.Equal(t, "2025-06-01T10:00:00.000Z", CombineBookingDate("2025-06-01", "10:00"))
	assert.Equal(t, "2025-12-24T18:30:00.000Z", CombineBookingDate("2025-12-24", "18:30"))
}

func TestCombineEditDate(t *testing.T) {
	assert.Equal(t, "2025-06-01T10:00:00", CombineEditDate("2025-06-01", "10:00"))
}
