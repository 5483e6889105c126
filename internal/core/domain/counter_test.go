package domain_test

import (
	"testing"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMonthScope(t *testing.T) {
	july2025 := time.Date(2025, time.July, 15, 10, 30, 0, 0, time.UTC)
	jan2031 := time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		prefix string
		at     time.Time
		want   string
	}{
		{name: "clinic prefix mid-month", prefix: "MK", at: july2025, want: "MK-2507"},
		{name: "three letter prefix", prefix: "TDT", at: july2025, want: "TDT-2507"},
		{name: "single digit month is padded", prefix: "DN", at: jan2031, want: "DN-3101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MonthScope(tt.prefix, tt.at))
		})
	}
}

func TestPaymentScope(t *testing.T) {
	at := time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "PT-2507", domain.PaymentScope(at))
}

func TestFormatCode(t *testing.T) {
	tests := []struct {
		name     string
		scope    string
		sequence int64
		width    int
		want     string
	}{
		{name: "first customer code", scope: "MK-2507", sequence: 1, width: domain.CustomerCodeWidth, want: "MK-2507-001"},
		{name: "second customer code", scope: "MK-2507", sequence: 2, width: domain.CustomerCodeWidth, want: "MK-2507-002"},
		{name: "customer code past padding", scope: "MK-2507", sequence: 1234, width: domain.CustomerCodeWidth, want: "MK-2507-1234"},
		{name: "first payment number", scope: "PT-2507", sequence: 1, width: domain.PaymentCodeWidth, want: "PT-2507-0001"},
		{name: "payment number three digits", scope: "PT-2507", sequence: 412, width: domain.PaymentCodeWidth, want: "PT-2507-0412"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatCode(tt.scope, tt.sequence, tt.width))
		})
	}
}
