package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Clinic           ClinicSvcFacade
	Customer         CustomerSvcFacade
	DentalService    DentalServiceSvcFacade
	ConsultedService ConsultedServiceSvcFacade
	Payment          PaymentSvcFacade
	Appointment      AppointmentSvcFacade
	TreatmentPlan    TreatmentPlanSvcFacade
	FollowUp         FollowUpSvcFacade
	Session          SessionSvcFacade
	APIToken         APITokenSvc
}
