package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/willipe53/onebor-position-keeper/internal/common"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
)

const pqUniqueViolation = "23505"

// isUniqueViolation matches the unique-key error across both postgres
// drivers in play: lib/pq in tests, the pgx-backed nrpgx driver at runtime.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		return true
	}

	var stateErr interface{ SQLState() string }
	return errors.As(err, &stateErr) && stateErr.SQLState() == pqUniqueViolation
}

type LeaseRepository interface {
	// DeleteExpired sweeps lease rows whose expiry has passed so a crashed
	// holder cannot block the resource beyond its TTL.
	DeleteExpired(ctx context.Context, resource string, now time.Time) (deleted int64, err error)
	// Insert claims the lease. A unique violation on the resource key means
	// another holder is active and surfaces as common.ErrLockConflict.
	Insert(ctx context.Context, lease models.Lease) (err error)
	// Delete drops the lease row regardless of holder. Zero rows deleted is
	// not an error.
	Delete(ctx context.Context, resource string) (deleted int64, err error)
	Get(ctx context.Context, resource string) (*models.Lease, error)
}

type leaseRepository sqlRepo

var _ LeaseRepository = (*leaseRepository)(nil)

func (r *leaseRepository) DeleteExpired(ctx context.Context, resource string, now time.Time) (deleted int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryLeaseDeleteExpired, resource, now)
	if err != nil {
		return
	}

	deleted, err = res.RowsAffected()
	return
}

func (r *leaseRepository) Insert(ctx context.Context, lease models.Lease) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryLeaseInsert, lease.Resource, lease.Holder, lease.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			err = common.ErrLockConflict
		}
		return
	}

	return
}

func (r *leaseRepository) Delete(ctx context.Context, resource string) (deleted int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryLeaseDelete, resource)
	if err != nil {
		return
	}

	deleted, err = res.RowsAffected()
	return
}

func (r *leaseRepository) Get(ctx context.Context, resource string) (*models.Lease, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var lease models.Lease
	err = db.QueryRowContext(ctx, queryLeaseGet, resource).Scan(
		&lease.Resource,
		&lease.Holder,
		&lease.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return &lease, nil
}
