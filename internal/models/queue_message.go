package models

import (
	"encoding/json"
	"fmt"
)

type QueueOperation string

const (
	QueueOperationCreate QueueOperation = "create"
	QueueOperationUpdate QueueOperation = "update"
)

// QueueMessage is the body published by the transaction API for every
// create/update, one full transaction snapshot per message.
type QueueMessage struct {
	Operation          QueueOperation    `json:"operation"`
	TransactionID      int64             `json:"transaction_id"`
	PortfolioEntityID  int64             `json:"portfolio_entity_id"`
	ContraEntityID     *int64            `json:"contra_entity_id"`
	InstrumentEntityID *int64            `json:"instrument_entity_id"`
	TransactionTypeID  int64             `json:"transaction_type_id"`
	StatusID           TransactionStatus `json:"transaction_status_id"`
	Properties         Properties        `json:"properties"`
	UpdatedUserID      int64             `json:"updated_user_id"`
	Timestamp          string            `json:"timestamp"`
}

// GroupID serializes all messages belonging to one transaction on the FIFO
// queue so they are never delivered out of order or concurrently.
func (m QueueMessage) GroupID() string {
	return fmt.Sprintf("transaction-%d", m.TransactionID)
}

// DeduplicationID collapses retried publishes of the same snapshot within the
// queue's dedup window.
func (m QueueMessage) DeduplicationID() string {
	return fmt.Sprintf("%d-%s-%s", m.TransactionID, m.Operation, m.Timestamp)
}

func (m QueueMessage) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// Transaction rebuilds the snapshot carried by the message.
func (m QueueMessage) Transaction() Transaction {
	return Transaction{
		ID:                 m.TransactionID,
		PortfolioEntityID:  m.PortfolioEntityID,
		ContraEntityID:     m.ContraEntityID,
		InstrumentEntityID: m.InstrumentEntityID,
		TransactionTypeID:  m.TransactionTypeID,
		StatusID:           m.StatusID,
		Properties:         m.Properties,
		UpdatedUserID:      m.UpdatedUserID,
	}
}

func ParseQueueMessage(body []byte) (*QueueMessage, error) {
	var msg QueueMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, err
	}
	if msg.TransactionID == 0 {
		return nil, fmt.Errorf("queue message missing transaction_id")
	}
	return &msg, nil
}
