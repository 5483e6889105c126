package models

// Counter is the row shape for the counters table. Scope is the primary
// key; there is one row per clinic (or PT) per month, created on first use.
type Counter struct {
	Scope    string `json:"scope" db:"scope"`
	Sequence int64  `json:"sequence" db:"sequence"`
}
