package models

// TreatmentPlan is the row shape for the treatment_plans table. Items is
// the raw JSONB column; mapping marshals the typed item list.
type TreatmentPlan struct {
	PlanID     string `json:"planID" db:"plan_id"`
	CustomerID string `json:"customerID" db:"customer_id"`
	Name       string `json:"name" db:"name"`
	Status     string `json:"status" db:"status"`
	Items      []byte `json:"items" db:"items"`
	AuditFields
}
