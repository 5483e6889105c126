package domain_test

import (
	"testing"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAllocationTotal(t *testing.T) {
	tests := []struct {
		name        string
		allocations []domain.PaymentAllocation
		want        decimal.Decimal
	}{
		{
			name:        "empty",
			allocations: nil,
			want:        decimal.Zero,
		},
		{
			name: "single allocation",
			allocations: []domain.PaymentAllocation{
				{ConsultedServiceID: "cs-1", Amount: decimal.NewFromInt(300000)},
			},
			want: decimal.NewFromInt(300000),
		},
		{
			name: "split across services",
			allocations: []domain.PaymentAllocation{
				{ConsultedServiceID: "cs-1", Amount: decimal.NewFromInt(150000)},
				{ConsultedServiceID: "cs-2", Amount: decimal.NewFromInt(250000)},
				{ConsultedServiceID: "cs-3", Amount: decimal.NewFromInt(100000)},
			},
			want: decimal.NewFromInt(500000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.AllocationTotal(tt.allocations)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestSessionID(t *testing.T) {
	day := timeMustParse(t, "2025-07-15")
	assert.Equal(t, "cust-1_2025-07-15", domain.SessionID("cust-1", day))
}
