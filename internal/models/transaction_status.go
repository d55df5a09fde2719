package models

// TransactionStatus values are a wire contract with the transaction API and
// must not be renumbered.
type TransactionStatus int64

const (
	TransactionStatusIncomplete TransactionStatus = 1
	TransactionStatusQueued     TransactionStatus = 2
	TransactionStatusProcessed  TransactionStatus = 3
	TransactionStatusUnknown    TransactionStatus = 4
)

// MapTransactionStatus is a map of transaction status with its title for display purpose
var MapTransactionStatus = map[TransactionStatus]string{
	TransactionStatusIncomplete: "INCOMPLETE",
	TransactionStatusQueued:     "QUEUED",
	TransactionStatusProcessed:  "PROCESSED",
	TransactionStatusUnknown:    "UNKNOWN",
}

func (m TransactionStatus) String() string {
	if s, ok := MapTransactionStatus[m]; ok {
		return s
	}
	return "UNDEFINED"
}
