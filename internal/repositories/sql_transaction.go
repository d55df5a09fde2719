package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/willipe53/onebor-position-keeper/internal/common"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
)

type TransactionRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	// UpdateStatus moves a transaction to the given status and stamps the
	// acting user. Zero rows affected surfaces as common.ErrNoRowsAffected.
	UpdateStatus(ctx context.Context, in models.UpdateTransactionStatusIn) (err error)
	// BulkUpdateQueuedToUnknown is the reconciliation sweep: every QUEUED
	// transaction becomes UNKNOWN in one statement. Returns the number of
	// rows touched.
	BulkUpdateQueuedToUnknown(ctx context.Context, updatedUserID int64) (updated int64, err error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

func (r *transactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var (
		trx      models.Transaction
		rawProps []byte
	)
	err = db.QueryRowContext(ctx, queryTransactionGetByID, id).Scan(
		&trx.ID,
		&trx.PortfolioEntityID,
		&trx.ContraEntityID,
		&trx.InstrumentEntityID,
		&trx.TransactionTypeID,
		&trx.StatusID,
		&rawProps,
		&trx.UpdatedUserID,
		&trx.CreatedAt,
		&trx.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	if len(rawProps) > 0 {
		if err = json.Unmarshal(rawProps, &trx.Properties); err != nil {
			return nil, err
		}
	}

	return &trx, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, in models.UpdateTransactionStatusIn) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryTransactionUpdateStatus, in.StatusID, in.UpdatedUserID, in.TransactionID)
	if err != nil {
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return
	}
	if affected == 0 {
		err = common.ErrNoRowsAffected
		return
	}

	return
}

func (r *transactionRepository) BulkUpdateQueuedToUnknown(ctx context.Context, updatedUserID int64) (updated int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Update("transactions").
		Set("transaction_status_id", models.TransactionStatusUnknown).
		Set("updated_user_id", updatedUserID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"transaction_status_id": models.TransactionStatusQueued}).
		ToSql()
	if err != nil {
		return
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return
	}

	updated, err = res.RowsAffected()
	return
}
