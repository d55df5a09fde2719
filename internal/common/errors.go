package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")

	// ErrLockConflict is the normal losing outcome of a lease acquire, not a
	// failure.
	ErrLockConflict = errors.New("lease is held by another holder")

	ErrUnknownTransactionType = errors.New("transaction type not found in reference data")
	ErrRulesIncomplete        = errors.New("transaction type rules are incomplete")
	ErrMalformedRule          = errors.New("malformed position keeping rule")
	ErrMalformedMessage       = errors.New("malformed queue message body")
	ErrUnableToUpdateStatus   = errors.New("unable to update transaction status")
	ErrUnableToEmitPosition   = errors.New("unable to emit position record")

	ErrNoRows = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
