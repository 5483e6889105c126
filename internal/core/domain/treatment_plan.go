package domain

// TreatmentPlanStatus tracks plan progress.
type TreatmentPlanStatus string

const (
	PlanProposed   TreatmentPlanStatus = "PROPOSED"
	PlanInProgress TreatmentPlanStatus = "IN_PROGRESS"
	PlanCompleted  TreatmentPlanStatus = "COMPLETED"
	PlanAbandoned  TreatmentPlanStatus = "ABANDONED"
)

// TreatmentPlanItem is one step of a plan. Stored as a JSONB list on the
// plan row; items have no identity of their own.
type TreatmentPlanItem struct {
	ServiceName string `json:"serviceName"`
	ToothRange  string `json:"toothRange"`
	Note        string `json:"note"`
}

// TreatmentPlan groups the intended course of treatment for a customer.
type TreatmentPlan struct {
	PlanID     string              `json:"planID"`
	CustomerID string              `json:"customerID"`
	Name       string              `json:"name"`
	Status     TreatmentPlanStatus `json:"status"`
	Items      []TreatmentPlanItem `json:"items"`
	AuditFields
}
