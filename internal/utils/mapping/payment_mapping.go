package mapping

import (
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/models"
)

// ToModelPayment converts a domain Payment to its model form (allocations
// are mapped separately; they live in their own table).
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		PaymentNumber: d.PaymentNumber,
		CustomerID:    d.CustomerID,
		Amount:        d.Amount,
		Method:        string(d.Method),
		PaymentDate:   d.PaymentDate,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToModelPaymentAllocation converts a domain PaymentAllocation to its model form.
func ToModelPaymentAllocation(d domain.PaymentAllocation) models.PaymentAllocation {
	return models.PaymentAllocation{
		AllocationID:       d.AllocationID,
		PaymentID:          d.PaymentID,
		ConsultedServiceID: d.ConsultedServiceID,
		Amount:             d.Amount,
	}
}

// ToDomainPayment converts a model Payment plus its allocation rows to a
// domain Payment.
func ToDomainPayment(m models.Payment, allocations []models.PaymentAllocation) domain.Payment {
	ds := make([]domain.PaymentAllocation, len(allocations))
	for i, a := range allocations {
		ds[i] = domain.PaymentAllocation{
			AllocationID:       a.AllocationID,
			PaymentID:          a.PaymentID,
			ConsultedServiceID: a.ConsultedServiceID,
			Amount:             a.Amount,
		}
	}
	return domain.Payment{
		PaymentID:     m.PaymentID,
		PaymentNumber: m.PaymentNumber,
		CustomerID:    m.CustomerID,
		Amount:        m.Amount,
		Method:        domain.PaymentMethod(m.Method),
		PaymentDate:   m.PaymentDate,
		Notes:         m.Notes,
		Allocations:   ds,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
