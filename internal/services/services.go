package services

import (
	"github.com/willipe53/onebor-position-keeper/internal/common/cache"
	"github.com/willipe53/onebor-position-keeper/internal/common/metrics"
	"github.com/willipe53/onebor-position-keeper/internal/common/retry"
	"github.com/willipe53/onebor-position-keeper/internal/common/sqs"
	"github.com/willipe53/onebor-position-keeper/internal/config"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo     repositories.SQLRepository
	queueClient sqs.Client
	refCache    cache.Client[models.ReferenceSnapshot]

	positionSink PositionSink
	retryer      retry.Retryer
	metrics      metrics.Metrics

	common service

	Lock    *lock
	RefData *refData
	Calc    *calc
	Keeper  *keeper
	Recon   *recon
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	queueClient sqs.Client,
	refCache cache.Client[models.ReferenceSnapshot],
	positionSink PositionSink,
	retryer retry.Retryer,
	m metrics.Metrics,
) *Services {
	srv := &Services{
		conf:         conf,
		sqlRepo:      sqlRepo,
		queueClient:  queueClient,
		refCache:     refCache,
		positionSink: positionSink,
		retryer:      retryer,
		metrics:      m,
	}
	srv.common.srv = srv
	srv.Lock = (*lock)(&srv.common)
	srv.RefData = (*refData)(&srv.common)
	srv.Calc = (*calc)(&srv.common)
	srv.Keeper = (*keeper)(&srv.common)
	srv.Recon = (*recon)(&srv.common)

	return srv
}
