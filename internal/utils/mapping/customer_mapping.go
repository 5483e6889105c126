package mapping

import (
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer.
// An empty domain code maps to NULL so the uncoded sweep can find the row.
func ToModelCustomer(d domain.Customer) models.Customer {
	var code *string
	if d.CustomerCode != "" {
		c := d.CustomerCode
		code = &c
	}
	return models.Customer{
		CustomerID:   d.CustomerID,
		CustomerCode: code,
		ClinicID:     d.ClinicID,
		FullName:     d.FullName,
		Phone:        d.Phone,
		Email:        d.Email,
		DateOfBirth:  d.DateOfBirth,
		Gender:       d.Gender,
		Address:      d.Address,
		Source:       d.Source,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer.
func ToDomainCustomer(m models.Customer) domain.Customer {
	code := ""
	if m.CustomerCode != nil {
		code = *m.CustomerCode
	}
	return domain.Customer{
		CustomerID:   m.CustomerID,
		CustomerCode: code,
		ClinicID:     m.ClinicID,
		FullName:     m.FullName,
		Phone:        m.Phone,
		Email:        m.Email,
		DateOfBirth:  m.DateOfBirth,
		Gender:       m.Gender,
		Address:      m.Address,
		Source:       m.Source,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers.
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
