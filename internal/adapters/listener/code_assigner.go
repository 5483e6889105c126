// Package listener runs the reactive customer-code assigner. A database
// trigger fires pg_notify on every customer insert; this worker holds a
// dedicated connection on LISTEN and assigns a code to each notified
// customer. A sweep on startup and after every reconnect picks up rows whose
// notifications were missed while no listener was connected.
package listener

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	portssvc "github.com/hndang/clinic_mgmt_app/internal/core/ports/services"
	"github.com/jackc/pgx/v5/pgxpool"
)

// channelName must match the channel the customers insert trigger notifies.
const channelName = "customer_created"

const sweepBatchSize = 100

// CodeAssigner listens for customer inserts and assigns customer codes.
type CodeAssigner struct {
	pool     *pgxpool.Pool
	assigner portssvc.CustomerCodeAssignerSvc
	logger   *slog.Logger
}

func NewCodeAssigner(pool *pgxpool.Pool, assigner portssvc.CustomerCodeAssignerSvc, logger *slog.Logger) *CodeAssigner {
	return &CodeAssigner{
		pool:     pool,
		assigner: assigner,
		logger:   logger.With("component", "code_assigner"),
	}
}

// Run blocks until ctx is cancelled. Each iteration acquires a dedicated
// connection, issues LISTEN, sweeps uncoded rows, then consumes
// notifications. Connection loss falls through to a backoff-paced retry of
// the whole iteration.
func (a *CodeAssigner) Run(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // never give up while the process lives

	operation := func() error {
		if err := a.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			a.logger.Error("listener disconnected, will reconnect", "error", err)
			return err
		}
		return nil
	}
	err := backoff.Retry(operation, backoff.WithContext(bo, ctx))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *CodeAssigner) listen(ctx context.Context) error {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+channelName); err != nil {
		return err
	}
	a.logger.Info("listening for customer inserts", "channel", channelName)

	// Rows inserted while no listener was connected never notify again;
	// sweep them before trusting the channel.
	a.sweep(ctx)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		a.handle(ctx, notification.Payload)
	}
}

// sweep assigns codes to every customer currently stored without one.
func (a *CodeAssigner) sweep(ctx context.Context) {
	for {
		ids, err := a.assigner.ListUncodedCustomerIDs(ctx, sweepBatchSize)
		if err != nil {
			a.logger.Error("uncoded customer sweep failed", "error", err)
			return
		}
		if len(ids) == 0 {
			return
		}
		a.logger.Info("sweeping uncoded customers", "count", len(ids))
		for _, id := range ids {
			a.handle(ctx, id)
		}
		if len(ids) < sweepBatchSize {
			return
		}
	}
}

// handle assigns a code to one customer. Assignment is idempotent, so a
// notification racing the sweep (or a redelivered one) is harmless.
func (a *CodeAssigner) handle(ctx context.Context, customerID string) {
	if customerID == "" {
		return
	}
	code, err := a.assigner.AssignCustomerCode(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Row deleted between notify and handling.
			a.logger.Warn("notified customer no longer exists", "customer_id", customerID)
			return
		}
		a.logger.Error("failed to assign customer code", "customer_id", customerID, "error", err)
		return
	}
	a.logger.Info("customer code assigned", "customer_id", customerID, "code", code)
}
