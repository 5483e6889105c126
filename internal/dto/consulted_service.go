package dto

import (
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateConsultedServiceRequest records a catalog service sold to a
// customer. The final price derives from quantity, unit price and discount;
// amount paid always starts at zero.
type CreateConsultedServiceRequest struct {
	CustomerID  string          `json:"customerID" binding:"required"`
	ServiceID   string          `json:"serviceID" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	Discount    decimal.Decimal `json:"discount"`
	ConsultedAt time.Time       `json:"consultedAt" binding:"required"`
}

// UpdateConsultedServiceRequest covers the editable descriptive fields.
// Balance fields are deliberately absent: they move only through payments.
type UpdateConsultedServiceRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=CONFIRMED COMPLETED"`
}

// ConsultedServiceResponse defines the data returned for a consulted
// service, including the derived outstanding debt.
type ConsultedServiceResponse struct {
	ConsultedServiceID string          `json:"consultedServiceID"`
	CustomerID         string          `json:"customerID"`
	ServiceID          string          `json:"serviceID"`
	ServiceName        string          `json:"serviceName"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	Discount           decimal.Decimal `json:"discount"`
	FinalPrice         decimal.Decimal `json:"finalPrice"`
	AmountPaid         decimal.Decimal `json:"amountPaid"`
	Debt               decimal.Decimal `json:"debt"`
	Status             string          `json:"status"`
	ConsultedAt        time.Time       `json:"consultedAt"`
}

// ToConsultedServiceResponse converts a domain.ConsultedService to its
// response form.
func ToConsultedServiceResponse(s *domain.ConsultedService) ConsultedServiceResponse {
	return ConsultedServiceResponse{
		ConsultedServiceID: s.ConsultedServiceID,
		CustomerID:         s.CustomerID,
		ServiceID:          s.ServiceID,
		ServiceName:        s.ServiceName,
		Quantity:           s.Quantity,
		UnitPrice:          s.UnitPrice,
		Discount:           s.Discount,
		FinalPrice:         s.FinalPrice,
		AmountPaid:         s.AmountPaid,
		Debt:               s.Debt(),
		Status:             string(s.Status),
		ConsultedAt:        s.ConsultedAt,
	}
}

// ToListConsultedServiceResponse converts a slice of consulted services.
func ToListConsultedServiceResponse(services []domain.ConsultedService) []ConsultedServiceResponse {
	res := make([]ConsultedServiceResponse, len(services))
	for i, s := range services {
		res[i] = ToConsultedServiceResponse(&s)
	}
	return res
}
