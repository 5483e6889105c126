package dto

import (
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
)

// PlanItemRequest is one step of a treatment plan draft.
type PlanItemRequest struct {
	ServiceName string `json:"serviceName" binding:"required"`
	ToothRange  string `json:"toothRange"`
	Note        string `json:"note"`
}

// CreateTreatmentPlanRequest defines a new treatment plan.
type CreateTreatmentPlanRequest struct {
	CustomerID string            `json:"customerID" binding:"required"`
	Name       string            `json:"name" binding:"required"`
	Items      []PlanItemRequest `json:"items"`
}

// UpdateTreatmentPlanRequest defines the editable plan fields.
type UpdateTreatmentPlanRequest struct {
	Name   *string           `json:"name"`
	Status *string           `json:"status" binding:"omitempty,oneof=PROPOSED IN_PROGRESS COMPLETED ABANDONED"`
	Items  []PlanItemRequest `json:"items"`
}

// TreatmentPlanResponse defines the data returned for a plan.
type TreatmentPlanResponse struct {
	PlanID     string                     `json:"planID"`
	CustomerID string                     `json:"customerID"`
	Name       string                     `json:"name"`
	Status     string                     `json:"status"`
	Items      []domain.TreatmentPlanItem `json:"items"`
}

// CreateFollowUpCallRequest records one care call.
type CreateFollowUpCallRequest struct {
	CustomerID   string     `json:"customerID" binding:"required"`
	CallDate     time.Time  `json:"callDate" binding:"required"`
	Result       string     `json:"result" binding:"required"`
	Notes        string     `json:"notes"`
	NextCallDate *time.Time `json:"nextCallDate"`
}

// FollowUpCallResponse defines the data returned for a care call.
type FollowUpCallResponse struct {
	CallID       string     `json:"callID"`
	CustomerID   string     `json:"customerID"`
	CallDate     time.Time  `json:"callDate"`
	Result       string     `json:"result"`
	Notes        string     `json:"notes"`
	NextCallDate *time.Time `json:"nextCallDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// TreatmentDetailRequest is one procedure performed during a session.
type TreatmentDetailRequest struct {
	ServiceName string `json:"serviceName" binding:"required"`
	ToothRange  string `json:"toothRange"`
	Dentist     string `json:"dentist"`
	Note        string `json:"note"`
}

// AddSessionDetailsRequest appends procedures to a customer's session on a
// day, creating the session if the day has none yet.
type AddSessionDetailsRequest struct {
	CustomerID       string                   `json:"customerID" binding:"required"`
	SessionDate      time.Time                `json:"sessionDate" binding:"required"`
	TreatmentDetails []TreatmentDetailRequest `json:"treatmentDetails" binding:"required,min=1,dive"`
}

// TreatmentSessionResponse defines the data returned for a session.
type TreatmentSessionResponse struct {
	SessionID        string                   `json:"sessionID"`
	CustomerID       string                   `json:"customerID"`
	SessionDate      time.Time                `json:"sessionDate"`
	TreatmentDetails []domain.TreatmentDetail `json:"treatmentDetails"`
	LastUpdatedAt    time.Time                `json:"lastUpdatedAt"`
}

// ToTreatmentPlanResponse converts a domain.TreatmentPlan to its response form.
func ToTreatmentPlanResponse(p *domain.TreatmentPlan) TreatmentPlanResponse {
	return TreatmentPlanResponse{
		PlanID:     p.PlanID,
		CustomerID: p.CustomerID,
		Name:       p.Name,
		Status:     string(p.Status),
		Items:      p.Items,
	}
}

// ToListTreatmentPlanResponse converts a slice of plans.
func ToListTreatmentPlanResponse(plans []domain.TreatmentPlan) []TreatmentPlanResponse {
	res := make([]TreatmentPlanResponse, len(plans))
	for i, p := range plans {
		res[i] = ToTreatmentPlanResponse(&p)
	}
	return res
}

// ToFollowUpCallResponse converts a domain.FollowUpCall to its response form.
func ToFollowUpCallResponse(c *domain.FollowUpCall) FollowUpCallResponse {
	return FollowUpCallResponse{
		CallID:       c.CallID,
		CustomerID:   c.CustomerID,
		CallDate:     c.CallDate,
		Result:       c.Result,
		Notes:        c.Notes,
		NextCallDate: c.NextCallDate,
		CreatedAt:    c.CreatedAt,
	}
}

// ToListFollowUpCallResponse converts a slice of care calls.
func ToListFollowUpCallResponse(calls []domain.FollowUpCall) []FollowUpCallResponse {
	res := make([]FollowUpCallResponse, len(calls))
	for i, c := range calls {
		res[i] = ToFollowUpCallResponse(&c)
	}
	return res
}

// ToTreatmentSessionResponse converts a domain.TreatmentSession to its
// response form.
func ToTreatmentSessionResponse(s *domain.TreatmentSession) TreatmentSessionResponse {
	return TreatmentSessionResponse{
		SessionID:        s.SessionID,
		CustomerID:       s.CustomerID,
		SessionDate:      s.SessionDate,
		TreatmentDetails: s.TreatmentDetails,
		LastUpdatedAt:    s.LastUpdatedAt,
	}
}

// ToListTreatmentSessionResponse converts a slice of sessions.
func ToListTreatmentSessionResponse(sessions []domain.TreatmentSession) []TreatmentSessionResponse {
	res := make([]TreatmentSessionResponse, len(sessions))
	for i, s := range sessions {
		res[i] = ToTreatmentSessionResponse(&s)
	}
	return res
}
