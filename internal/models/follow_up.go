package models

import "time"

// FollowUpCall is the row shape for the follow_up_calls table (append-only).
type FollowUpCall struct {
	CallID       string     `json:"callID" db:"call_id"`
	CustomerID   string     `json:"customerID" db:"customer_id"`
	CallDate     time.Time  `json:"callDate" db:"call_date"`
	Result       string     `json:"result" db:"result"`
	Notes        string     `json:"notes" db:"notes"`
	NextCallDate *time.Time `json:"nextCallDate" db:"next_call_date"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	CreatedBy    string     `json:"createdBy" db:"created_by"`
}
