package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/willipe53/onebor-position-keeper/internal/common"
	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/common/sqs"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
	"github.com/willipe53/onebor-position-keeper/internal/repositories"
)

// processOutcome tags what the drain loop should do with a received message.
type processOutcome string

const (
	// outcomeAck: processed, delete from the queue.
	outcomeAck processOutcome = "ack"
	// outcomeRetry: leave untouched; the visibility window expiring is the
	// retry mechanism.
	outcomeRetry processOutcome = "nack-retry"
	// outcomePoison: unprocessable, delete anyway so it cannot loop forever.
	outcomePoison processOutcome = "nack-poison"
)

// KeeperService is the worker orchestrator. One RunPass optionally takes the
// lease, drains the transaction queue, reconciles statuses and releases.
type KeeperService interface {
	RunPass(ctx context.Context, trigger models.KeeperTrigger) (out models.KeeperRunOut, err error)
}

type keeper service

var _ KeeperService = (*keeper)(nil)

func (s *keeper) RunPass(ctx context.Context, trigger models.KeeperTrigger) (out models.KeeperRunOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	start := time.Now()
	defer s.srv.metrics.GetKeeperPrometheus().ObserveDrainDuration(start)

	out.Trigger = trigger
	out.Holder = fmt.Sprintf("%s-%s", s.srv.conf.App.Name, uuid.NewString())

	log.Info(ctx, "[POSITION-KEEPER] pass starting",
		log.String("trigger", string(trigger)),
		log.String("holder", out.Holder),
	)

	if s.srv.conf.Keeper.UseLock {
		var acquired models.AcquireLockOut
		acquired, err = s.srv.Lock.Acquire(ctx, out.Holder)
		if err != nil {
			return
		}
		if acquired.Status == models.LockStatusConflict {
			out.Conflict = true
			log.Info(ctx, "[POSITION-KEEPER] pass skipped, lease held elsewhere",
				log.String("holder", out.Holder),
			)
			return
		}
		defer func() {
			if _, relErr := s.srv.Lock.Release(ctx, out.Holder); relErr != nil {
				log.Error(ctx, "[POSITION-KEEPER] lease release failed", log.Err(relErr))
			}
		}()
	}

	if err = s.srv.RefData.Load(ctx); err != nil {
		return
	}

	if out.Processed, err = s.drain(ctx); err != nil {
		return
	}

	if out.Reconciled, err = s.srv.Recon.Reconcile(ctx); err != nil {
		return
	}

	log.Info(ctx, "[POSITION-KEEPER] pass finished",
		log.String("trigger", string(trigger)),
		log.Int64("processed", out.Processed),
		log.Int64("reconciled", out.Reconciled),
	)
	return
}

// drain empties the queue in bounded batches: check approximate depth,
// receive, process each message sequentially, batch-delete the acked and
// poison ones, and repeat until a receive comes back empty.
func (s *keeper) drain(ctx context.Context) (processed int64, err error) {
	for {
		var depth int64
		err = s.srv.retryer.Retry(ctx, func() error {
			var opErr error
			depth, opErr = s.srv.queueClient.ApproximateDepth(ctx)
			return opErr
		}, nil)
		if err != nil {
			return
		}
		if depth == 0 {
			return
		}

		var messages []sqs.Message
		err = s.srv.retryer.Retry(ctx, func() error {
			var opErr error
			messages, opErr = s.srv.queueClient.Receive(ctx)
			return opErr
		}, nil)
		if err != nil {
			return
		}
		if len(messages) == 0 {
			return
		}

		var toDelete []sqs.Message
		for _, msg := range messages {
			switch s.processMessage(ctx, msg) {
			case outcomeAck:
				processed++
				toDelete = append(toDelete, msg)
				s.srv.metrics.GetKeeperPrometheus().ObserveMessage(string(outcomeAck))
			case outcomePoison:
				toDelete = append(toDelete, msg)
				s.srv.metrics.GetKeeperPrometheus().ObservePoison()
			case outcomeRetry:
				s.srv.metrics.GetKeeperPrometheus().ObserveMessage(string(outcomeRetry))
			}
		}

		if len(toDelete) > 0 {
			err = s.srv.retryer.Retry(ctx, func() error {
				return s.srv.queueClient.DeleteBatch(ctx, toDelete)
			}, nil)
			if err != nil {
				return
			}
		}
	}
}

func (s *keeper) processMessage(ctx context.Context, raw sqs.Message) processOutcome {
	msg, err := models.ParseQueueMessage(raw.Body)
	if err != nil {
		log.Warn(ctx, "[POSITION-KEEPER] poison message, deleting",
			log.String("message_id", raw.ID),
			log.Err(fmt.Errorf("%v: %w", err, common.ErrMalformedMessage)),
		)
		return outcomePoison
	}

	trx := msg.Transaction()
	if _, err = s.srv.Calc.Process(ctx, trx); err != nil {
		log.Error(ctx, "[POSITION-KEEPER] processing failed, message left for retry",
			log.Int64("transaction_id", trx.ID),
			log.Err(err),
		)
		return outcomeRetry
	}

	err = s.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		return r.GetTransactionRepository().UpdateStatus(ctx, models.UpdateTransactionStatusIn{
			TransactionID: trx.ID,
			StatusID:      models.TransactionStatusProcessed,
			UpdatedUserID: s.srv.conf.Keeper.ActingUserID,
		})
	})
	if err != nil {
		log.Error(ctx, "[POSITION-KEEPER] status update failed, message left for retry",
			log.Int64("transaction_id", trx.ID),
			log.Err(fmt.Errorf("%v: %w", err, common.ErrUnableToUpdateStatus)),
		)
		return outcomeRetry
	}

	return outcomeAck
}
