package repositories

const (
	queryEntityList = `
		SELECT
			entity_id,
			name,
			created_at,
			updated_at
		FROM entities
		ORDER BY entity_id;`
)
