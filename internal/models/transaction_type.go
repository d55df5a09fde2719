package models

import (
	"time"
)

// RuleSet is the rules blob stored on every transaction type. It names the
// property keys carrying the current and forecast position dates, plus the
// ordered position-keeping action rules (see ParsePositionRule for the
// grammar).
type RuleSet struct {
	CurrentPositionDateField  string   `json:"position_keeping_current_date"`
	ForecastPositionDateField string   `json:"position_keeping_forecast_date"`
	PositionRules             []string `json:"position_keeping_actions"`
}

// Complete reports whether the rule set can drive a calculation: both date
// fields named and at least one action rule.
func (r RuleSet) Complete() bool {
	return r.CurrentPositionDateField != "" &&
		r.ForecastPositionDateField != "" &&
		len(r.PositionRules) > 0
}

type TransactionType struct {
	ID        int64      `json:"transaction_type_id"`
	Name      string     `json:"name"`
	Rules     RuleSet    `json:"rules"`
	CreatedAt *time.Time `json:"-"`
	UpdatedAt *time.Time `json:"-"`
}

type TransactionTypeOut struct {
	Kind  string  `json:"kind"`
	ID    int64   `json:"transaction_type_id"`
	Name  string  `json:"name"`
	Rules RuleSet `json:"rules"`
}

func (t TransactionType) ToResponse() TransactionTypeOut {
	return TransactionTypeOut{
		Kind:  "transactionType",
		ID:    t.ID,
		Name:  t.Name,
		Rules: t.Rules,
	}
}
