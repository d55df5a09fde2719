package sqs

import (
	"errors"
)

// Message is one received queue message. ReceiptHandle is what delete needs;
// it is only valid while the message stays invisible.
type Message struct {
	ID            string
	ReceiptHandle string
	Body          []byte
}

var (
	ErrQueueURLRequired = errors.New("queue url is required")
	ErrEmptyBatch       = errors.New("delete batch is empty")
)
