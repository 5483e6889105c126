package pgsql

import (
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql-backed repository over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool, txMaxAttempts int) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		TxRunner:          NewTxRunner(pool, txMaxAttempts),
		CounterRepo:       NewPgxCounterRepository(),
		ClinicRepo:        NewPgxClinicRepository(pool),
		CustomerRepo:      NewPgxCustomerRepository(pool),
		DentalServiceRepo: NewPgxDentalServiceRepository(pool),
		ConsultedSvcRepo:  NewPgxConsultedServiceRepository(pool),
		PaymentRepo:       NewPgxPaymentRepository(pool),
		AppointmentRepo:   NewPgxAppointmentRepository(pool),
		TreatmentPlanRepo: NewPgxTreatmentPlanRepository(pool),
		FollowUpRepo:      NewPgxFollowUpRepository(pool),
		SessionRepo:       NewPgxSessionRepository(pool),
		APITokenRepo:      NewPgxAPITokenRepository(pool),
	}
}
