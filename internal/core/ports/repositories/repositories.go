package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxRunner          TxRunner
	CounterRepo       CounterRepository
	ClinicRepo        ClinicRepository
	CustomerRepo      CustomerRepositoryFacade
	DentalServiceRepo DentalServiceRepositoryFacade
	ConsultedSvcRepo  ConsultedServiceRepositoryFacade
	PaymentRepo       PaymentRepositoryFacade
	AppointmentRepo   AppointmentRepositoryFacade
	TreatmentPlanRepo TreatmentPlanRepositoryFacade
	FollowUpRepo      FollowUpRepositoryFacade
	SessionRepo       SessionRepositoryFacade
	APITokenRepo      APITokenRepositoryFacade
}
