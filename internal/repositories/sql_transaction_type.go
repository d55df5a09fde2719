package repositories

import (
	"context"
	"encoding/json"

	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
)

type TransactionTypeRepository interface {
	List(ctx context.Context) ([]models.TransactionType, error)
}

type transactionTypeRepository sqlRepo

var _ TransactionTypeRepository = (*transactionTypeRepository)(nil)

func (r *transactionTypeRepository) List(ctx context.Context) ([]models.TransactionType, error) {
	var err error

	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryTransactionTypeList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.TransactionType
	for rows.Next() {
		var (
			tt       models.TransactionType
			rawRules []byte
		)
		if err = rows.Scan(
			&tt.ID,
			&tt.Name,
			&rawRules,
			&tt.CreatedAt,
			&tt.UpdatedAt,
		); err != nil {
			return nil, err
		}

		// A rules blob that does not decode is loaded as an empty rule set;
		// the calculation engine rejects it per transaction instead of the
		// whole snapshot failing to load.
		if len(rawRules) > 0 {
			_ = json.Unmarshal(rawRules, &tt.Rules)
		}

		result = append(result, tt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
