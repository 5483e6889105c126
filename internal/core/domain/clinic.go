package domain

// Clinic is reference data for a branch of the practice. The prefix is the
// short uppercase label used in customer codes (e.g. MK, TDT, DN).
type Clinic struct {
	ClinicID string `json:"clinicID"`
	Prefix   string `json:"prefix"`
	Name     string `json:"name"`
}
