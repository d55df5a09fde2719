package models

import (
	"time"
)

// Lease is a time-bounded exclusive claim on a shared resource, recoverable
// after expiry without an explicit release.
type Lease struct {
	Resource  string    `json:"lock_id"`
	Holder    string    `json:"holder"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (l Lease) Expired(now time.Time) bool {
	return l.ExpiresAt.Before(now)
}

type LockStatus string

const (
	LockStatusGranted  LockStatus = "granted"
	LockStatusConflict LockStatus = "conflict"
	LockStatusReleased LockStatus = "released"
)

type AcquireLockOut struct {
	Status LockStatus

	// StaleDeleted counts expired rows swept before the insert attempt,
	// surfaced for diagnostics only.
	StaleDeleted int64
}

type ReleaseLockOut struct {
	Status       LockStatus
	DeletedCount int64
}

const (
	LockActionSet    = "set"
	LockActionDelete = "delete"
)

type LockRequest struct {
	Action string `json:"action" validate:"required,oneof=set delete"`
	Holder string `json:"holder" validate:"required,min=1,max=128"`
}

type LockResponse struct {
	Status       string `json:"status"`
	LockID       string `json:"lock_id"`
	Holder       string `json:"holder"`
	StaleDeleted *int64 `json:"stale_deleted,omitempty"`
	DeletedCount *int64 `json:"deleted_count,omitempty"`
}
