package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  TaxEstimate
	}{
		{
			name:  "regular month",
			total: 1000,
			want: TaxEstimate{
				SingleTax:          50,
				MilitaryTax:        10,
				SocialContribution: 1902.34,
				TotalTax:           1962.34,
				Net:                -962.34,
			},
		},
		{
			name:  "empty month still owes the social contribution",
			total: 0,
			want: TaxEstimate{
				SingleTax:          0,
				MilitaryTax:        0,
				SocialContribution: 1902.34,
				TotalTax:           1902.34,
				Net:                -1902.34,
			},
		},
		{
			name:  "components round to cents",
			total: 33333.33,
			want: TaxEstimate{
				SingleTax:          1666.67,
				MilitaryTax:        333.33,
				SocialContribution: 1902.34,
				TotalTax:           3902.34,
				Net:                29430.99,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.total))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1962,34", FormatAmount(1962.34))
	assert.Equal(t, "0,00", FormatAmount(0))
	assert.Equal(t, "-962,34", FormatAmount(-962.34))
	assert.Equal(t, "12500,00", FormatAmount(12500))
}
