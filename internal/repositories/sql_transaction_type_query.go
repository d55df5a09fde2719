package repositories

const (
	queryTransactionTypeList = `
		SELECT
			transaction_type_id,
			name,
			properties,
			created_at,
			updated_at
		FROM transaction_types
		ORDER BY transaction_type_id;`
)
