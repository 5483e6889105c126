package services

import (
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
)

// NewServiceContainer wires every application service over the repository
// provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Clinic = NewClinicService(repos.ClinicRepo)
	container.Customer = NewCustomerService(repos.TxRunner, repos.CustomerRepo, repos.ClinicRepo, repos.CounterRepo)
	container.DentalService = NewDentalServiceService(repos.DentalServiceRepo)
	container.ConsultedService = NewConsultedServiceService(repos.ConsultedSvcRepo, repos.DentalServiceRepo, repos.CustomerRepo)
	container.Payment = NewPaymentService(repos.TxRunner, repos.PaymentRepo, repos.ConsultedSvcRepo, repos.CounterRepo)
	container.Appointment = NewAppointmentService(repos.AppointmentRepo, repos.CustomerRepo)
	container.TreatmentPlan = NewTreatmentPlanService(repos.TreatmentPlanRepo, repos.CustomerRepo)
	container.FollowUp = NewFollowUpService(repos.FollowUpRepo, repos.CustomerRepo)
	container.Session = NewSessionService(repos.SessionRepo, repos.CustomerRepo)
	container.APIToken = NewAPITokenService(repos.APITokenRepo, repos.ClinicRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.ClinicSvcFacade           = (*ClinicService)(nil)
	_ portssvc.CustomerSvcFacade         = (*CustomerService)(nil)
	_ portssvc.DentalServiceSvcFacade    = (*DentalServiceService)(nil)
	_ portssvc.ConsultedServiceSvcFacade = (*ConsultedServiceService)(nil)
	_ portssvc.PaymentSvcFacade          = (*PaymentService)(nil)
	_ portssvc.AppointmentSvcFacade      = (*AppointmentService)(nil)
	_ portssvc.TreatmentPlanSvcFacade    = (*TreatmentPlanService)(nil)
	_ portssvc.FollowUpSvcFacade         = (*FollowUpService)(nil)
	_ portssvc.SessionSvcFacade          = (*SessionService)(nil)
	_ portssvc.APITokenSvc               = (*apiTokenService)(nil)
)
