package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talentflow/recruiting-crm/internal/model"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestValidateStatusDates(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		rejection *time.Time
		start     *time.Time
		wantErr   bool
	}{
		{"new needs no dates", model.StatusNew, nil, nil, false},
		{"in_process needs no dates", model.StatusInProcess, nil, nil, false},
		{"rejected with date", model.StatusRejected, datePtr(2024, 5, 1), nil, false},
		{"rejected without date", model.StatusRejected, nil, nil, true},
		{"hired with start date", model.StatusHired, nil, datePtr(2024, 6, 1), false},
		{"hired without start date", model.StatusHired, nil, nil, true},
		{"unknown status", "archived", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatusDates(tt.status, tt.rejection, tt.start)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateReplacement(t *testing.T) {
	ref := uint64(42)

	assert.NoError(t, ValidateReplacement(false, nil))
	assert.NoError(t, ValidateReplacement(true, nil))
	assert.NoError(t, ValidateReplacement(true, &ref))
	assert.ErrorIs(t, ValidateReplacement(false, &ref), ErrValidation)
}
