package mapping

import (
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/models"
)

// ToDomainClinic converts a model Clinic to its domain form.
func ToDomainClinic(m models.Clinic) domain.Clinic {
	return domain.Clinic{ClinicID: m.ClinicID, Prefix: m.Prefix, Name: m.Name}
}

// ToDomainClinicSlice converts a slice of model Clinics.
func ToDomainClinicSlice(ms []models.Clinic) []domain.Clinic {
	ds := make([]domain.Clinic, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClinic(m)
	}
	return ds
}

// ToModelDentalService converts a domain DentalService to its model form.
func ToModelDentalService(d domain.DentalService) models.DentalService {
	return models.DentalService{
		ServiceID:   d.ServiceID,
		Name:        d.Name,
		Category:    d.Category,
		UnitPrice:   d.UnitPrice,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDentalService converts a model DentalService to its domain form.
func ToDomainDentalService(m models.DentalService) domain.DentalService {
	return domain.DentalService{
		ServiceID:   m.ServiceID,
		Name:        m.Name,
		Category:    m.Category,
		UnitPrice:   m.UnitPrice,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDentalServiceSlice converts a slice of model DentalServices.
func ToDomainDentalServiceSlice(ms []models.DentalService) []domain.DentalService {
	ds := make([]domain.DentalService, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDentalService(m)
	}
	return ds
}

// ToModelFollowUpCall converts a domain FollowUpCall to its model form.
func ToModelFollowUpCall(d domain.FollowUpCall) models.FollowUpCall {
	return models.FollowUpCall{
		CallID:       d.CallID,
		CustomerID:   d.CustomerID,
		CallDate:     d.CallDate,
		Result:       d.Result,
		Notes:        d.Notes,
		NextCallDate: d.NextCallDate,
		CreatedAt:    d.CreatedAt,
		CreatedBy:    d.CreatedBy,
	}
}

// ToDomainFollowUpCall converts a model FollowUpCall to its domain form.
func ToDomainFollowUpCall(m models.FollowUpCall) domain.FollowUpCall {
	return domain.FollowUpCall{
		CallID:       m.CallID,
		CustomerID:   m.CustomerID,
		CallDate:     m.CallDate,
		Result:       m.Result,
		Notes:        m.Notes,
		NextCallDate: m.NextCallDate,
		CreatedAt:    m.CreatedAt,
		CreatedBy:    m.CreatedBy,
	}
}

// ToDomainFollowUpCallSlice converts a slice of model FollowUpCalls.
func ToDomainFollowUpCallSlice(ms []models.FollowUpCall) []domain.FollowUpCall {
	ds := make([]domain.FollowUpCall, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFollowUpCall(m)
	}
	return ds
}

// ToModelAPIToken converts a domain APIToken to its model form.
func ToModelAPIToken(d domain.APIToken) models.APIToken {
	return models.APIToken{
		TokenID:    d.TokenID,
		Name:       d.Name,
		ClinicID:   d.ClinicID,
		TokenHash:  d.TokenHash,
		LastUsedAt: d.LastUsedAt,
		ExpiresAt:  d.ExpiresAt,
		RevokedAt:  d.RevokedAt,
		CreatedAt:  d.CreatedAt,
		CreatedBy:  d.CreatedBy,
	}
}

// ToDomainAPIToken converts a model APIToken to its domain form.
func ToDomainAPIToken(m models.APIToken) domain.APIToken {
	return domain.APIToken{
		TokenID:    m.TokenID,
		Name:       m.Name,
		ClinicID:   m.ClinicID,
		TokenHash:  m.TokenHash,
		LastUsedAt: m.LastUsedAt,
		ExpiresAt:  m.ExpiresAt,
		RevokedAt:  m.RevokedAt,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}
