package dto

import (
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDentalServiceRequest defines a new catalog entry.
type CreateDentalServiceRequest struct {
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// UpdateDentalServiceRequest defines the editable catalog fields.
type UpdateDentalServiceRequest struct {
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	IsActive  *bool            `json:"isActive"`
}

// DentalServiceResponse defines the data returned for a catalog entry.
type DentalServiceResponse struct {
	ServiceID string          `json:"serviceID"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	IsActive  bool            `json:"isActive"`
}

// ClinicResponse defines the data returned for a clinic.
type ClinicResponse struct {
	ClinicID string `json:"clinicID"`
	Prefix   string `json:"prefix"`
	Name     string `json:"name"`
}

// ToDentalServiceResponse converts a domain.DentalService to its response form.
func ToDentalServiceResponse(s *domain.DentalService) DentalServiceResponse {
	return DentalServiceResponse{
		ServiceID: s.ServiceID,
		Name:      s.Name,
		Category:  s.Category,
		UnitPrice: s.UnitPrice,
		IsActive:  s.IsActive,
	}
}

// ToListDentalServiceResponse converts a slice of catalog entries.
func ToListDentalServiceResponse(services []domain.DentalService) []DentalServiceResponse {
	res := make([]DentalServiceResponse, len(services))
	for i, s := range services {
		res[i] = ToDentalServiceResponse(&s)
	}
	return res
}

// ToClinicResponse converts a domain.Clinic to its response form.
func ToClinicResponse(c *domain.Clinic) ClinicResponse {
	return ClinicResponse{ClinicID: c.ClinicID, Prefix: c.Prefix, Name: c.Name}
}

// ToListClinicResponse converts a slice of clinics.
func ToListClinicResponse(clinics []domain.Clinic) []ClinicResponse {
	res := make([]ClinicResponse, len(clinics))
	for i, c := range clinics {
		res[i] = ToClinicResponse(&c)
	}
	return res
}
