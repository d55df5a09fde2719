package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type RuleCalculation string

const (
	RuleCalcAmount        RuleCalculation = "amount"
	RuleCalcAmountPrice   RuleCalculation = "amount*price"
	RuleCalcRatioPosition RuleCalculation = "ratio*position"
)

type RuleDirection string

const (
	RuleDirectionUp   RuleDirection = "up"
	RuleDirectionDown RuleDirection = "down"
)

// Well-known currency-or-field tokens; anything else is looked up in the
// transaction properties directly.
const (
	RuleFieldInstrument     = "instrument"
	RuleFieldCurrencyCode   = "currency_code"
	RuleFieldSettleCurrency = "settle_currency"
)

// PositionRule is one parsed position-keeping action. The wire form is four
// whitespace-separated tokens: `<entity-role> <calculation> <currency-or-field> <direction>`.
type PositionRule struct {
	EntityRole    string
	Calculation   RuleCalculation
	CurrencyField string
	Direction     RuleDirection
}

// ParsePositionRule parses a single action rule. Token count must be exactly
// four and the calculation/direction tokens must be known; the entity role
// and currency-or-field tokens are open sets.
func ParsePositionRule(raw string) (PositionRule, error) {
	tokens := strings.Fields(raw)
	if len(tokens) != 4 {
		return PositionRule{}, fmt.Errorf("rule %q: expected 4 tokens, got %d", raw, len(tokens))
	}

	rule := PositionRule{
		EntityRole:    tokens[0],
		CurrencyField: tokens[2],
	}

	switch RuleCalculation(tokens[1]) {
	case RuleCalcAmount, RuleCalcAmountPrice, RuleCalcRatioPosition:
		rule.Calculation = RuleCalculation(tokens[1])
	default:
		return PositionRule{}, fmt.Errorf("rule %q: unknown calculation %q", raw, tokens[1])
	}

	switch RuleDirection(tokens[3]) {
	case RuleDirectionUp, RuleDirectionDown:
		rule.Direction = RuleDirection(tokens[3])
	default:
		return PositionRule{}, fmt.Errorf("rule %q: unknown direction %q", raw, tokens[3])
	}

	return rule, nil
}

type PositionHorizon string

const (
	PositionHorizonCurrent  PositionHorizon = "current"
	PositionHorizonForecast PositionHorizon = "forecast"
)

// Position is one signed ledger impact derived from a transaction: a
// quantity of an instrument or currency attributed to a party as of a
// posting date. Every rule yields a current and a forecast record that share
// quantity and label and differ only in the date used.
type Position struct {
	TransactionID int64           `json:"transaction_id"`
	EntityRole    string          `json:"entity_role"`
	EntityID      int64           `json:"entity_id"`
	EntityName    string          `json:"entity_name"`
	Label         string          `json:"label"`
	Quantity      decimal.Decimal `json:"quantity"`
	Date          string          `json:"date"`
	Horizon       PositionHorizon `json:"horizon"`
}
