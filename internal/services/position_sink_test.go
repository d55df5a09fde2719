package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/willipe53/onebor-position-keeper/internal/config"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/repositories/mock"
	"github.com/willipe53/onebor-position-keeper/internal/services"
)

func TestPositionSink_SQLDriverAppendsToLedger(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockRepo := mock.NewMockSQLRepository(mockCtrl)
	mockPositions := mock.NewMockPositionRepository(mockCtrl)

	sink := services.NewPositionSink(config.PositionSinkConfig{Driver: config.PositionSinkDriverSQL}, mockRepo)

	positions := []models.Position{{
		TransactionID: 42,
		EntityRole:    "portfolio",
		Label:         "ACME",
		Quantity:      decimal.NewFromInt(100),
		Date:          "2026-08-31",
		Horizon:       models.PositionHorizonCurrent,
	}}

	mockRepo.EXPECT().GetPositionRepository().Return(mockPositions)
	mockPositions.EXPECT().InsertBatch(gomock.Any(), positions).Return(nil)

	assert.NoError(t, sink.Emit(context.Background(), positions))
}

func TestPositionSink_LogDriverIsDefault(t *testing.T) {
	sink := services.NewPositionSink(config.PositionSinkConfig{}, nil)

	err := sink.Emit(context.Background(), []models.Position{{
		TransactionID: 42,
		Quantity:      decimal.NewFromInt(100),
	}})
	assert.NoError(t, err)
}
