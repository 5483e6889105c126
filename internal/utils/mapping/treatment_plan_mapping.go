package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/models"
)

// ToModelTreatmentPlan converts a domain TreatmentPlan to its model form,
// marshalling the item list into the JSONB column.
func ToModelTreatmentPlan(d domain.TreatmentPlan) (models.TreatmentPlan, error) {
	items := d.Items
	if items == nil {
		items = []domain.TreatmentPlanItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return models.TreatmentPlan{}, fmt.Errorf("failed to marshal plan items for plan %s: %w", d.PlanID, err)
	}
	return models.TreatmentPlan{
		PlanID:      d.PlanID,
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		Status:      string(d.Status),
		Items:       raw,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainTreatmentPlan converts a model TreatmentPlan to its domain form.
func ToDomainTreatmentPlan(m models.TreatmentPlan) (domain.TreatmentPlan, error) {
	var items []domain.TreatmentPlanItem
	if len(m.Items) > 0 {
		if err := json.Unmarshal(m.Items, &items); err != nil {
			return domain.TreatmentPlan{}, fmt.Errorf("failed to unmarshal plan items for plan %s: %w", m.PlanID, err)
		}
	}
	return domain.TreatmentPlan{
		PlanID:      m.PlanID,
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Status:      domain.TreatmentPlanStatus(m.Status),
		Items:       items,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainTreatmentPlanSlice converts a slice of model TreatmentPlans.
func ToDomainTreatmentPlanSlice(ms []models.TreatmentPlan) ([]domain.TreatmentPlan, error) {
	ds := make([]domain.TreatmentPlan, len(ms))
	for i, m := range ms {
		d, err := ToDomainTreatmentPlan(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
