package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/models"
)

// ToModelTreatmentSession converts a domain TreatmentSession to its model
// form, marshalling the detail list into the JSONB column.
func ToModelTreatmentSession(d domain.TreatmentSession) (models.TreatmentSession, error) {
	details := d.TreatmentDetails
	if details == nil {
		details = []domain.TreatmentDetail{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return models.TreatmentSession{}, fmt.Errorf("failed to marshal treatment details for session %s: %w", d.SessionID, err)
	}
	return models.TreatmentSession{
		SessionID:        d.SessionID,
		CustomerID:       d.CustomerID,
		SessionDate:      d.SessionDate,
		TreatmentDetails: raw,
		LastUpdatedAt:    d.LastUpdatedAt,
		LastUpdatedBy:    d.LastUpdatedBy,
	}, nil
}

// ToDomainTreatmentSession converts a model TreatmentSession to its domain form.
func ToDomainTreatmentSession(m models.TreatmentSession) (domain.TreatmentSession, error) {
	var details []domain.TreatmentDetail
	if len(m.TreatmentDetails) > 0 {
		if err := json.Unmarshal(m.TreatmentDetails, &details); err != nil {
			return domain.TreatmentSession{}, fmt.Errorf("failed to unmarshal treatment details for session %s: %w", m.SessionID, err)
		}
	}
	return domain.TreatmentSession{
		SessionID:        m.SessionID,
		CustomerID:       m.CustomerID,
		SessionDate:      m.SessionDate,
		TreatmentDetails: details,
		LastUpdatedAt:    m.LastUpdatedAt,
		LastUpdatedBy:    m.LastUpdatedBy,
	}, nil
}
