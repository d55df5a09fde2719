package repositories

import (
	"context"

	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
)

type EntityRepository interface {
	List(ctx context.Context) ([]models.Entity, error)
}

type entityRepository sqlRepo

var _ EntityRepository = (*entityRepository)(nil)

func (r *entityRepository) List(ctx context.Context) ([]models.Entity, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryEntityList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Entity
	for rows.Next() {
		var entity models.Entity
		if err = rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
