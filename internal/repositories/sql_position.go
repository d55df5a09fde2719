package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
)

// PositionRepository appends computed position records to the positions
// ledger table. Insert only, never update or delete: corrections arrive as
// new transactions, not as mutations of booked rows.
type PositionRepository interface {
	InsertBatch(ctx context.Context, positions []models.Position) (err error)
}

type positionRepository sqlRepo

var _ PositionRepository = (*positionRepository)(nil)

func (r *positionRepository) InsertBatch(ctx context.Context, positions []models.Position) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(positions) == 0 {
		return nil
	}

	db := r.r.extractTxWrite(ctx)

	builder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert("positions").
		Columns(
			"transaction_id",
			"entity_role",
			"entity_id",
			"entity_name",
			"label",
			"quantity",
			"position_date",
			"horizon",
		)
	for _, p := range positions {
		builder = builder.Values(
			p.TransactionID,
			p.EntityRole,
			p.EntityID,
			p.EntityName,
			p.Label,
			p.Quantity,
			p.Date,
			p.Horizon,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return
	}

	_, err = db.ExecContext(ctx, query, args...)
	return
}
