package domain_test

import (
	"testing"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConsultedService_Debt(t *testing.T) {
	svc := domain.ConsultedService{
		FinalPrice: decimal.NewFromInt(1000000),
		AmountPaid: decimal.NewFromInt(200000),
	}
	assert.True(t, svc.Debt().Equal(decimal.NewFromInt(800000)))
}

func TestConsultedService_WithAllocation(t *testing.T) {
	svc := domain.ConsultedService{
		FinalPrice: decimal.NewFromInt(1000000),
		AmountPaid: decimal.NewFromInt(200000),
	}

	updated := svc.WithAllocation(decimal.NewFromInt(300000))

	assert.True(t, updated.AmountPaid.Equal(decimal.NewFromInt(500000)))
	assert.True(t, updated.Debt().Equal(decimal.NewFromInt(500000)))
	// the receiver must not be mutated
	assert.True(t, svc.AmountPaid.Equal(decimal.NewFromInt(200000)))
}

func TestCalculateFinalPrice(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice decimal.Decimal
		discount  decimal.Decimal
		want      decimal.Decimal
	}{
		{
			name:      "no discount",
			quantity:  2,
			unitPrice: decimal.NewFromInt(500000),
			discount:  decimal.Zero,
			want:      decimal.NewFromInt(1000000),
		},
		{
			name:      "absolute discount",
			quantity:  1,
			unitPrice: decimal.NewFromInt(1200000),
			discount:  decimal.NewFromInt(200000),
			want:      decimal.NewFromInt(1000000),
		},
		{
			name:      "fully discounted",
			quantity:  1,
			unitPrice: decimal.NewFromInt(300000),
			discount:  decimal.NewFromInt(300000),
			want:      decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CalculateFinalPrice(tt.quantity, tt.unitPrice, tt.discount)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}
