package models

// KeeperTrigger names the invocation path. All three behave identically once
// inside the orchestrator.
type KeeperTrigger string

const (
	KeeperTriggerManual    KeeperTrigger = "manual"
	KeeperTriggerScheduled KeeperTrigger = "scheduled"
	KeeperTriggerOnDemand  KeeperTrigger = "on-demand"
)

// KeeperRunOut summarizes one orchestrator pass for the caller.
type KeeperRunOut struct {
	Trigger    KeeperTrigger `json:"trigger"`
	Holder     string        `json:"holder"`
	Conflict   bool          `json:"conflict"`
	Processed  int64         `json:"processed"`
	Reconciled int64         `json:"reconciled"`
}

// ReferenceSnapshot is the read-only reference data loaded once per worker
// lifetime: transaction types with their rules and entity display names.
// Entities are keyed by the string form of their identity so both native and
// string callers resolve.
type ReferenceSnapshot struct {
	TransactionTypes map[int64]TransactionType `json:"transaction_types"`
	EntityNames      map[string]string         `json:"entity_names"`
}
