package mapping

import (
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/models"
)

// ToModelAppointment converts a domain Appointment to its model form.
func ToModelAppointment(d domain.Appointment) models.Appointment {
	return models.Appointment{
		AppointmentID: d.AppointmentID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		ClinicID:      d.ClinicID,
		ScheduledAt:   d.ScheduledAt,
		DurationMins:  d.DurationMins,
		Status:        string(d.Status),
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAppointment converts a model Appointment to its domain form.
func ToDomainAppointment(m models.Appointment) domain.Appointment {
	return domain.Appointment{
		AppointmentID: m.AppointmentID,
		CustomerID:    m.CustomerID,
		CustomerName:  m.CustomerName,
		ClinicID:      m.ClinicID,
		ScheduledAt:   m.ScheduledAt,
		DurationMins:  m.DurationMins,
		Status:        domain.AppointmentStatus(m.Status),
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAppointmentSlice converts a slice of model Appointments.
func ToDomainAppointmentSlice(ms []models.Appointment) []domain.Appointment {
	ds := make([]domain.Appointment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAppointment(m)
	}
	return ds
}
