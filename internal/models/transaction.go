package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Properties is the opaque per-transaction property bag: amounts, prices,
// dates, currency codes and any type-specific fields the transaction API
// chose to attach.
type Properties map[string]any

// GetString returns the property as a string, tolerating JSON numbers.
func (p Properties) GetString(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return decimal.NewFromFloat(t).String(), true
	case json.Number:
		return t.String(), true
	default:
		return fmt.Sprintf("%v", t), true
	}
}

// GetDecimal returns the property as a decimal, tolerating both JSON numbers
// and numeric strings. Anything unparseable reads as absent.
func (p Properties) GetDecimal(key string) (decimal.Decimal, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return decimal.Zero, false
	}
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), true
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

type Transaction struct {
	ID                 int64             `json:"transaction_id"`
	PortfolioEntityID  int64             `json:"portfolio_entity_id"`
	ContraEntityID     *int64            `json:"contra_entity_id"`
	InstrumentEntityID *int64            `json:"instrument_entity_id"`
	TransactionTypeID  int64             `json:"transaction_type_id"`
	StatusID           TransactionStatus `json:"transaction_status_id"`
	Properties         Properties        `json:"properties"`
	UpdatedUserID      int64             `json:"updated_user_id"`
	CreatedAt          *time.Time        `json:"-"`
	UpdatedAt          *time.Time        `json:"-"`
}

// HasInstrument reports whether the transaction books against an instrument;
// cash and investor-only transactions carry no instrument reference.
func (t Transaction) HasInstrument() bool {
	return t.InstrumentEntityID != nil && *t.InstrumentEntityID != 0
}

type UpdateTransactionStatusIn struct {
	TransactionID int64
	StatusID      TransactionStatus
	UpdatedUserID int64
}
