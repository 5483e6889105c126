package dto

import (
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a new customer.
// The customer code is never supplied by the caller; it is minted inside
// the creation transaction.
type CreateCustomerRequest struct {
	ClinicID    string     `json:"clinicID" binding:"required"`
	FullName    string     `json:"fullName" binding:"required"`
	Phone       string     `json:"phone" binding:"required"`
	Email       string     `json:"email" binding:"omitempty,email"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Gender      string     `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Address     string     `json:"address"`
	Source      string     `json:"source"`
	Notes       string     `json:"notes"`
}

// UpdateCustomerRequest defines the editable customer fields. Pointers
// distinguish "not provided" from zero values.
type UpdateCustomerRequest struct {
	FullName    *string    `json:"fullName"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Gender      *string    `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Address     *string    `json:"address"`
	Source      *string    `json:"source"`
	Notes       *string    `json:"notes"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID   string     `json:"customerID"`
	CustomerCode string     `json:"customerCode"`
	ClinicID     string     `json:"clinicID"`
	FullName     string     `json:"fullName"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	Gender       string     `json:"gender"`
	Address      string     `json:"address"`
	Source       string     `json:"source"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    string     `json:"createdBy"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	ClinicID  string  `form:"clinicID"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListCustomersResponse is one page of customers plus the next cursor.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:   c.CustomerID,
		CustomerCode: c.CustomerCode,
		ClinicID:     c.ClinicID,
		FullName:     c.FullName,
		Phone:        c.Phone,
		Email:        c.Email,
		DateOfBirth:  c.DateOfBirth,
		Gender:       c.Gender,
		Address:      c.Address,
		Source:       c.Source,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		CreatedBy:    c.CreatedBy,
	}
}

// ToListCustomersResponse converts a customer page to its response form.
func ToListCustomersResponse(customers []domain.Customer, nextToken *string) ListCustomersResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return ListCustomersResponse{Customers: res, NextToken: nextToken}
}
