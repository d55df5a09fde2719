package repositories

const (
	queryTransactionGetByID = `
		SELECT
			transaction_id,
			portfolio_entity_id,
			contra_entity_id,
			instrument_entity_id,
			transaction_type_id,
			transaction_status_id,
			properties,
			updated_user_id,
			created_at,
			updated_at
		FROM transactions
		WHERE transaction_id = $1;`

	queryTransactionUpdateStatus = `
		UPDATE transactions
		SET
			transaction_status_id = $1,
			updated_user_id = $2,
			updated_at = now()
		WHERE transaction_id = $3;`
)
