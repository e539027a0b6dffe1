package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentflow/recruiting-crm/internal/model"
)

func pay(id uint64, y int, m time.Month, d int, amount float64) model.Payment {
	return model.Payment{ID: id, PaidDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Amount: amount}
}

func TestSummarize(t *testing.T) {
	may10 := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	jun01 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		items []model.Payment
		want  PaymentSummary
	}{
		{
			name:  "empty ledger",
			items: nil,
			want:  PaymentSummary{Paid: false, Total: 0, LastPaidDate: nil},
		},
		{
			name:  "single payment",
			items: []model.Payment{pay(1, 2024, 5, 10, 1500)},
			want:  PaymentSummary{Paid: true, Total: 1500, LastPaidDate: &may10},
		},
		{
			name: "latest date wins regardless of row order",
			items: []model.Payment{
				pay(2, 2024, 6, 1, 500),
				pay(1, 2024, 5, 10, 1000),
			},
			want: PaymentSummary{Paid: true, Total: 1500, LastPaidDate: &jun01},
		},
		{
			name: "total rounds to cents",
			items: []model.Payment{
				pay(1, 2024, 5, 10, 0.1),
				pay(2, 2024, 5, 10, 0.2),
			},
			want: PaymentSummary{Paid: true, Total: 0.3, LastPaidDate: &may10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.items))
		})
	}
}

func TestSummarizeDeletingOnlyPaymentClearsPaidState(t *testing.T) {
	ledger := []model.Payment{pay(1, 2024, 5, 10, 2000)}

	before := Summarize(ledger)
	require.True(t, before.Paid)
	require.NotNil(t, before.LastPaidDate)

	after := Summarize(ledger[:0])
	assert.False(t, after.Paid)
	assert.Zero(t, after.Total)
	assert.Nil(t, after.LastPaidDate)
}
