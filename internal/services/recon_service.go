package services

import (
	"context"

	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
)

// ReconService sweeps transaction statuses against queue depth: with an empty
// queue, anything still QUEUED has no in-flight message backing it and is
// moved to UNKNOWN. Best effort only; the approximate depth is eventually
// consistent.
type ReconService interface {
	Reconcile(ctx context.Context) (reconciled int64, err error)
}

type recon service

var _ ReconService = (*recon)(nil)

func (s *recon) Reconcile(ctx context.Context) (reconciled int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	depth, err := s.srv.queueClient.ApproximateDepth(ctx)
	if err != nil {
		return
	}
	if depth > 0 {
		log.Info(ctx, "[RECON-STATUS] queue not empty, skipping sweep",
			log.Int64("approximate_depth", depth),
		)
		return
	}

	reconciled, err = s.srv.sqlRepo.GetTransactionRepository().
		BulkUpdateQueuedToUnknown(ctx, s.srv.conf.Keeper.ActingUserID)
	if err != nil {
		return
	}

	s.srv.metrics.GetKeeperPrometheus().ObserveReconciled(reconciled)
	if reconciled > 0 {
		log.Warn(ctx, "[RECON-STATUS] queued transactions swept to unknown",
			log.Int64("reconciled", reconciled),
		)
	}
	return
}
