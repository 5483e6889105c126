package models

import "time"

// TreatmentSession is the row shape for the sessions table. The primary key
// is the natural "{customer_id}_{YYYY-MM-DD}" string; details are JSONB.
type TreatmentSession struct {
	SessionID        string    `json:"sessionID" db:"session_id"`
	CustomerID       string    `json:"customerID" db:"customer_id"`
	SessionDate      time.Time `json:"sessionDate" db:"session_date"`
	TreatmentDetails []byte    `json:"treatmentDetails" db:"treatment_details"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
	LastUpdatedBy    string    `json:"lastUpdatedBy" db:"last_updated_by"`
}
