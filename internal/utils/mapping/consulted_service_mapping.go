package mapping

import (
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/models"
)

// ToModelConsultedService converts a domain ConsultedService to its model form.
func ToModelConsultedService(d domain.ConsultedService) models.ConsultedService {
	return models.ConsultedService{
		ConsultedServiceID: d.ConsultedServiceID,
		CustomerID:         d.CustomerID,
		ServiceID:          d.ServiceID,
		ServiceName:        d.ServiceName,
		Quantity:           d.Quantity,
		UnitPrice:          d.UnitPrice,
		Discount:           d.Discount,
		FinalPrice:         d.FinalPrice,
		AmountPaid:         d.AmountPaid,
		Status:             models.ConsultedServiceStatus(d.Status),
		ConsultedAt:        d.ConsultedAt,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConsultedService converts a model ConsultedService to its domain form.
func ToDomainConsultedService(m models.ConsultedService) domain.ConsultedService {
	return domain.ConsultedService{
		ConsultedServiceID: m.ConsultedServiceID,
		CustomerID:         m.CustomerID,
		ServiceID:          m.ServiceID,
		ServiceName:        m.ServiceName,
		Quantity:           m.Quantity,
		UnitPrice:          m.UnitPrice,
		Discount:           m.Discount,
		FinalPrice:         m.FinalPrice,
		AmountPaid:         m.AmountPaid,
		Status:             domain.ConsultedServiceStatus(m.Status),
		ConsultedAt:        m.ConsultedAt,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainConsultedServiceSlice converts a slice of model ConsultedServices.
func ToDomainConsultedServiceSlice(ms []models.ConsultedService) []domain.ConsultedService {
	ds := make([]domain.ConsultedService, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConsultedService(m)
	}
	return ds
}
