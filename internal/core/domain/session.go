package domain

import (
	"fmt"
	"time"
)

// TreatmentDetail is one procedure performed during a session.
type TreatmentDetail struct {
	ServiceName string `json:"serviceName"`
	ToothRange  string `json:"toothRange"`
	Dentist     string `json:"dentist"`
	Note        string `json:"note"`
}

// TreatmentSession collects everything done for a customer on one day.
// There is at most one row per (customer, day); adding details to an
// existing day merges into the stored list rather than creating a new row.
type TreatmentSession struct {
	SessionID        string            `json:"sessionID"` // "{customerID}_{YYYY-MM-DD}"
	CustomerID       string            `json:"customerID"`
	SessionDate      time.Time         `json:"sessionDate"`
	TreatmentDetails []TreatmentDetail `json:"treatmentDetails"`
	LastUpdatedAt    time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy    string            `json:"lastUpdatedBy"`
}

// SessionID derives the natural key for a customer's session on a day.
func SessionID(customerID string, day time.Time) string {
	return fmt.Sprintf("%s_%s", customerID, day.Format("2006-01-02"))
}
