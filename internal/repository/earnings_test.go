package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	start, end, err := monthRange(2024, 3)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthRangeDecemberRollsIntoNextYear(t *testing.T) {
	start, end, err := monthRange(2024, 12)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthRangeRejectsInvalidMonth(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		_, _, err := monthRange(2024, m)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	}
}
