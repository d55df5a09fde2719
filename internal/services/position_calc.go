package services

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/willipe53/onebor-position-keeper/internal/common"
	"github.com/willipe53/onebor-position-keeper/internal/common/dateutil"
	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/monitoring"
)

const (
	propAmount          = "amount"
	propPrice           = "price"
	propRatio           = "ratio"
	propCurrentPosition = "current_position"

	cashLabel        = "Cash"
	entityRoleContra = "contra"
)

// CalcService is the position calculation engine: it resolves a transaction's
// type rules, computes one signed delta per rule and emits a current plus a
// forecast record for each to the position sink.
type CalcService interface {
	Process(ctx context.Context, trx models.Transaction) (records []models.Position, err error)
}

type calc service

var _ CalcService = (*calc)(nil)

func (s *calc) Process(ctx context.Context, trx models.Transaction) (records []models.Position, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	tt, ok := s.srv.RefData.GetTransactionType(ctx, trx.TransactionTypeID)
	if !ok {
		err = fmt.Errorf("transaction %d type %d: %w", trx.ID, trx.TransactionTypeID, common.ErrUnknownTransactionType)
		return
	}
	if !tt.Rules.Complete() {
		err = fmt.Errorf("transaction %d type %q: %w", trx.ID, tt.Name, common.ErrRulesIncomplete)
		return
	}

	currentDate := s.resolveDate(ctx, trx, tt.Rules.CurrentPositionDateField)
	forecastDate := s.resolveDate(ctx, trx, tt.Rules.ForecastPositionDateField)

	var parseErrs *multierror.Error
	for _, raw := range tt.Rules.PositionRules {
		rule, parseErr := models.ParsePositionRule(raw)
		if parseErr != nil {
			// Malformed rules are skipped, never fatal to the transaction.
			parseErrs = multierror.Append(parseErrs, parseErr)
			continue
		}

		quantity := s.resolveQuantity(ctx, rule, trx)
		label := s.resolveLabel(ctx, rule, trx)
		entityID, entityName := s.resolveEntity(ctx, rule, trx)

		for _, horizon := range []struct {
			kind models.PositionHorizon
			date string
		}{
			{models.PositionHorizonCurrent, currentDate},
			{models.PositionHorizonForecast, forecastDate},
		} {
			records = append(records, models.Position{
				TransactionID: trx.ID,
				EntityRole:    rule.EntityRole,
				EntityID:      entityID,
				EntityName:    entityName,
				Label:         label,
				Quantity:      quantity,
				Date:          horizon.date,
				Horizon:       horizon.kind,
			})
		}
	}
	if parseErrs.ErrorOrNil() != nil {
		log.Warn(ctx, "[POSITION-CALC] skipped malformed rules",
			log.Int64("transaction_id", trx.ID),
			log.Err(parseErrs),
		)
	}

	if err = s.srv.positionSink.Emit(ctx, records); err != nil {
		err = fmt.Errorf("%v: %w", err, common.ErrUnableToEmitPosition)
		records = nil
		return
	}

	return
}

func (s *calc) resolveDate(ctx context.Context, trx models.Transaction, field string) string {
	if date, ok := trx.Properties.GetString(field); ok && date != "" {
		return date
	}
	log.Warn(ctx, "[POSITION-CALC] date property missing, using today",
		log.Int64("transaction_id", trx.ID),
		log.String("field", field),
	)
	return dateutil.Today()
}

func (s *calc) resolveQuantity(ctx context.Context, rule models.PositionRule, trx models.Transaction) decimal.Decimal {
	var quantity decimal.Decimal

	switch rule.Calculation {
	case models.RuleCalcAmount:
		quantity, _ = trx.Properties.GetDecimal(propAmount)

	case models.RuleCalcAmountPrice:
		amount, _ := trx.Properties.GetDecimal(propAmount)
		price, ok := trx.Properties.GetDecimal(propPrice)
		if !ok || price.LessThanOrEqual(decimal.Zero) {
			log.Warn(ctx, "[POSITION-CALC] non-positive price, falling back to amount",
				log.Int64("transaction_id", trx.ID),
				log.String("price", price.String()),
			)
			quantity = amount
		} else {
			quantity = amount.Mul(price)
		}

	case models.RuleCalcRatioPosition:
		ratio, ok := trx.Properties.GetDecimal(propRatio)
		if !ok {
			ratio = decimal.NewFromInt(1)
		}
		current, ok := trx.Properties.GetDecimal(propCurrentPosition)
		if !ok {
			current = decimal.Zero
		}
		quantity = ratio.Mul(current)
	}

	if rule.Direction == models.RuleDirectionDown {
		quantity = quantity.Neg()
	}
	return quantity
}

func (s *calc) resolveLabel(ctx context.Context, rule models.PositionRule, trx models.Transaction) string {
	switch rule.CurrencyField {
	case models.RuleFieldInstrument:
		if !trx.HasInstrument() {
			return cashLabel
		}
		return s.srv.RefData.EntityName(ctx, *trx.InstrumentEntityID)

	case models.RuleFieldCurrencyCode, models.RuleFieldSettleCurrency:
		if currency, ok := trx.Properties.GetString(rule.CurrencyField); ok && currency != "" {
			return currency
		}
		return s.srv.conf.Keeper.DefaultCurrency

	default:
		// An arbitrary property key; absent keys label as the key itself.
		if value, ok := trx.Properties.GetString(rule.CurrencyField); ok && value != "" {
			return value
		}
		return rule.CurrencyField
	}
}

func (s *calc) resolveEntity(ctx context.Context, rule models.PositionRule, trx models.Transaction) (int64, string) {
	id := trx.PortfolioEntityID
	if rule.EntityRole == entityRoleContra {
		if trx.ContraEntityID == nil {
			return 0, models.PlaceholderEntityName(0)
		}
		id = *trx.ContraEntityID
	}
	return id, s.srv.RefData.EntityName(ctx, id)
}
