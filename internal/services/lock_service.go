package services

import (
	"context"
	"errors"
	"time"

	"github.com/willipe53/onebor-position-keeper/internal/common"
	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
	"github.com/willipe53/onebor-position-keeper/internal/repositories"
)

// LockService is the lease over the fixed position-keeper resource. Losing an
// acquire is a normal outcome, reported as status conflict rather than an
// error.
type LockService interface {
	Acquire(ctx context.Context, holder string) (out models.AcquireLockOut, err error)
	Release(ctx context.Context, holder string) (out models.ReleaseLockOut, err error)
}

type lock service

var _ LockService = (*lock)(nil)

// Acquire sweeps any expired lease row, then claims the resource with an
// insert. The sweep and the insert share one database transaction so no other
// acquirer can slip between them.
func (s *lock) Acquire(ctx context.Context, holder string) (out models.AcquireLockOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	resource := s.srv.conf.Lease.Resource

	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		now := time.Now()

		deleted, stepErr := r.GetLeaseRepository().DeleteExpired(ctx, resource, now)
		if stepErr != nil {
			return stepErr
		}
		out.StaleDeleted = deleted

		return r.GetLeaseRepository().Insert(ctx, models.Lease{
			Resource:  resource,
			Holder:    holder,
			ExpiresAt: now.Add(s.srv.conf.Lease.TTL),
		})
	})
	if err != nil {
		if errors.Is(err, common.ErrLockConflict) {
			s.srv.metrics.GetKeeperPrometheus().ObserveLockConflict()
			log.Info(ctx, "[LOCK] lease held elsewhere",
				log.String("resource", resource),
				log.String("holder", holder),
			)
			out.Status = models.LockStatusConflict
			err = nil
			return
		}
		return
	}

	log.Info(ctx, "[LOCK] lease granted",
		log.String("resource", resource),
		log.String("holder", holder),
		log.Int64("stale_deleted", out.StaleDeleted),
	)
	out.Status = models.LockStatusGranted
	return
}

// Release deletes the lease row unconditionally. Releasing an already-empty
// or foreign-held lease still reports released.
func (s *lock) Release(ctx context.Context, holder string) (out models.ReleaseLockOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	resource := s.srv.conf.Lease.Resource

	deleted, err := s.srv.sqlRepo.GetLeaseRepository().Delete(ctx, resource)
	if err != nil {
		return
	}

	log.Info(ctx, "[LOCK] lease released",
		log.String("resource", resource),
		log.String("holder", holder),
		log.Int64("deleted_count", deleted),
	)
	out.Status = models.LockStatusReleased
	out.DeletedCount = deleted
	return
}
