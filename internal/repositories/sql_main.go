package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/config"
)

//go:generate mockgen -source=sql_main.go -destination=mock/sql_main.go -package=mock

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	lr  *leaseRepository
	tr  *transactionRepository
	ttr *transactionTypeRepository
	er  *entityRepository
	pr  *positionRepository
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.lr = (*leaseRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.ttr = (*transactionTypeRepository)(&rtx.common)
	rtx.er = (*entityRepository)(&rtx.common)
	rtx.pr = (*positionRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetLeaseRepository() LeaseRepository
	GetTransactionRepository() TransactionRepository
	GetTransactionTypeRepository() TransactionTypeRepository
	GetEntityRepository() EntityRepository
	GetPositionRepository() PositionRepository
	Ping(ctx context.Context) error
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
			}

			log.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetLeaseRepository() LeaseRepository {
	return r.lr
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetTransactionTypeRepository() TransactionTypeRepository {
	return r.ttr
}

func (r *Repository) GetEntityRepository() EntityRepository {
	return r.er
}

func (r *Repository) GetPositionRepository() PositionRepository {
	return r.pr
}

func (r *Repository) Ping(ctx context.Context) error {
	if err := r.dbWrite.PingContext(ctx); err != nil {
		return fmt.Errorf("ping write pool: %w", err)
	}
	if err := r.dbRead.PingContext(ctx); err != nil {
		return fmt.Errorf("ping read pool: %w", err)
	}
	return nil
}
