package repositories

const (
	queryLeaseDeleteExpired = `
		DELETE FROM locks
		WHERE lock_id = $1
		  AND expires_at < $2;`

	// The primary key on lock_id is the mutex: a second inserter hits a
	// unique violation instead of a second row.
	queryLeaseInsert = `
		INSERT INTO locks (lock_id, holder, expires_at)
		VALUES ($1, $2, $3);`

	queryLeaseDelete = `
		DELETE FROM locks
		WHERE lock_id = $1;`

	queryLeaseGet = `
		SELECT lock_id, holder, expires_at
		FROM locks
		WHERE lock_id = $1;`
)
