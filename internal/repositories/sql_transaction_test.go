package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/willipe53/onebor-position-keeper/internal/common"
	"github.com/willipe53/onebor-position-keeper/internal/models"
)

func TestTransactionRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(transactionTestSuite))
}

type transactionTestSuite struct {
	suite.Suite
	t    *testing.T
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo TransactionRepository
}

func (suite *transactionTestSuite) SetupTest() {
	suite.t = suite.T()

	repo, mock, db := newTestRepository(suite.t)
	suite.db = db
	suite.mock = mock
	suite.repo = repo.GetTransactionRepository()
}

func (suite *transactionTestSuite) TearDownTest() {
	defer suite.db.Close()
}

func (suite *transactionTestSuite) TestRepository_GetByID() {
	columns := []string{
		"transaction_id", "portfolio_entity_id", "contra_entity_id",
		"instrument_entity_id", "transaction_type_id", "transaction_status_id",
		"properties", "updated_user_id", "created_at", "updated_at",
	}

	testCases := []struct {
		name    string
		wantErr error
		check   func(t *testing.T, trx *models.Transaction)
		doMock  func()
	}{
		{
			name: "found with properties",
			doMock: func() {
				rows := sqlmock.NewRows(columns).AddRow(
					42, 7, nil, 9, 3, models.TransactionStatusQueued,
					[]byte(`{"amount":"100","currency_code":"EUR"}`),
					1, time.Now(), time.Now(),
				)
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryTransactionGetByID)).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, trx *models.Transaction) {
				assert.Equal(t, int64(42), trx.ID)
				assert.True(t, trx.HasInstrument())
				amount, ok := trx.Properties.GetDecimal("amount")
				assert.True(t, ok)
				assert.Equal(t, "100", amount.String())
			},
		},
		{
			name: "not found",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryTransactionGetByID)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrDataNotFound,
		},
		{
			name: "db error",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryTransactionGetByID)).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			trx, err := suite.repo.GetByID(context.Background(), 42)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
				tc.check(t, trx)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *transactionTestSuite) TestRepository_UpdateStatus() {
	in := models.UpdateTransactionStatusIn{
		TransactionID: 42,
		StatusID:      models.TransactionStatusProcessed,
		UpdatedUserID: 1,
	}

	testCases := []struct {
		name    string
		wantErr error
		doMock  func()
	}{
		{
			name: "status updated",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryTransactionUpdateStatus)).
					WithArgs(in.StatusID, in.UpdatedUserID, in.TransactionID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing transaction",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryTransactionUpdateStatus)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: common.ErrNoRowsAffected,
		},
		{
			name: "db error",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryTransactionUpdateStatus)).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			err := suite.repo.UpdateStatus(context.Background(), in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *transactionTestSuite) TestRepository_BulkUpdateQueuedToUnknown() {
	testCases := []struct {
		name        string
		wantUpdated int64
		wantErr     bool
		doMock      func()
	}{
		{
			name: "queued rows reconciled",
			doMock: func() {
				suite.mock.
					ExpectExec("UPDATE transactions SET").
					WithArgs(models.TransactionStatusUnknown, int64(1), models.TransactionStatusQueued).
					WillReturnResult(sqlmock.NewResult(0, 3))
			},
			wantUpdated: 3,
		},
		{
			name: "nothing queued",
			doMock: func() {
				suite.mock.
					ExpectExec("UPDATE transactions SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantUpdated: 0,
		},
		{
			name: "db error",
			doMock: func() {
				suite.mock.
					ExpectExec("UPDATE transactions SET").
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			updated, err := suite.repo.BulkUpdateQueuedToUnknown(context.Background(), 1)
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantUpdated, updated)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}
