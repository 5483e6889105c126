package domain

import "time"

// FollowUpCall is one entry in the append-only care-call log for a
// customer. Calls are never edited or deleted.
type FollowUpCall struct {
	CallID       string     `json:"callID"`
	CustomerID   string     `json:"customerID"`
	CallDate     time.Time  `json:"callDate"`
	Result       string     `json:"result"`
	Notes        string     `json:"notes"`
	NextCallDate *time.Time `json:"nextCallDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    string     `json:"createdBy"`
}
