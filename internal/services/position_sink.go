package services

import (
	"context"

	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/config"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/repositories"
)

//go:generate mockgen -source=position_sink.go -destination=mock/position_sink.go -package=mock

// PositionSink receives the records computed by the calculation engine.
// Persistence is pluggable: the log driver traces records, the sql driver
// appends them to the positions ledger table.
type PositionSink interface {
	Emit(ctx context.Context, positions []models.Position) error
}

func NewPositionSink(cfg config.PositionSinkConfig, repo repositories.SQLRepository) PositionSink {
	if cfg.Driver == config.PositionSinkDriverSQL {
		return &sqlPositionSink{repo: repo}
	}
	return &logPositionSink{}
}

type logPositionSink struct{}

var _ PositionSink = (*logPositionSink)(nil)

func (s *logPositionSink) Emit(ctx context.Context, positions []models.Position) error {
	for _, p := range positions {
		log.Info(ctx, "[POSITION-SINK] position emitted",
			log.Int64("transaction_id", p.TransactionID),
			log.String("entity_role", p.EntityRole),
			log.String("entity_name", p.EntityName),
			log.String("label", p.Label),
			log.String("quantity", p.Quantity.String()),
			log.String("date", p.Date),
			log.String("horizon", string(p.Horizon)),
		)
	}
	return nil
}

type sqlPositionSink struct {
	repo repositories.SQLRepository
}

var _ PositionSink = (*sqlPositionSink)(nil)

func (s *sqlPositionSink) Emit(ctx context.Context, positions []models.Position) error {
	return s.repo.GetPositionRepository().InsertBatch(ctx, positions)
}
