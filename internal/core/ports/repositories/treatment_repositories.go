package repositories

import (
	"context"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
)

// TreatmentPlanRepositoryFacade covers treatment plans.
type TreatmentPlanRepositoryFacade interface {
	// FindTreatmentPlanByID retrieves one plan.
	FindTreatmentPlanByID(ctx context.Context, planID string) (*domain.TreatmentPlan, error)

	// ListTreatmentPlansByCustomer retrieves all plans of a customer.
	ListTreatmentPlansByCustomer(ctx context.Context, customerID string) ([]domain.TreatmentPlan, error)

	// CreateTreatmentPlan inserts a new plan.
	CreateTreatmentPlan(ctx context.Context, plan domain.TreatmentPlan) error

	// UpdateTreatmentPlan updates a plan.
	UpdateTreatmentPlan(ctx context.Context, plan domain.TreatmentPlan) error
}

// FollowUpRepositoryFacade covers the append-only care-call log.
type FollowUpRepositoryFacade interface {
	// CreateFollowUpCall appends one call record.
	CreateFollowUpCall(ctx context.Context, call domain.FollowUpCall) error

	// ListFollowUpCallsByCustomer retrieves a customer's calls, newest first.
	ListFollowUpCallsByCustomer(ctx context.Context, customerID string) ([]domain.FollowUpCall, error)

	// ListRecentFollowUpCalls retrieves the most recent calls across customers.
	ListRecentFollowUpCalls(ctx context.Context, limit int) ([]domain.FollowUpCall, error)
}

// SessionRepositoryFacade covers per-day treatment sessions.
type SessionRepositoryFacade interface {
	// FindSessionByID retrieves one session by its natural key.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.TreatmentSession, error)

	// ListSessionsByCustomer retrieves all sessions of a customer.
	ListSessionsByCustomer(ctx context.Context, customerID string) ([]domain.TreatmentSession, error)

	// UpsertSession writes the session row, replacing the stored detail
	// list with the merged one the service computed.
	UpsertSession(ctx context.Context, session domain.TreatmentSession) error
}
