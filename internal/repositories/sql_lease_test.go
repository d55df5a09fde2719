package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/willipe53/onebor-position-keeper/internal/common"
	"github.com/willipe53/onebor-position-keeper/internal/models"
)

func TestLeaseRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(leaseTestSuite))
}

type leaseTestSuite struct {
	suite.Suite
	t    *testing.T
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo LeaseRepository
}

func (suite *leaseTestSuite) SetupTest() {
	suite.t = suite.T()

	repo, mock, db := newTestRepository(suite.t)
	suite.db = db
	suite.mock = mock
	suite.repo = repo.GetLeaseRepository()
}

func (suite *leaseTestSuite) TearDownTest() {
	defer suite.db.Close()
}

func (suite *leaseTestSuite) TestRepository_DeleteExpired() {
	testCases := []struct {
		name        string
		wantDeleted int64
		wantErr     bool
		doMock      func()
	}{
		{
			name: "stale row swept",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryLeaseDeleteExpired)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantDeleted: 1,
		},
		{
			name: "nothing expired",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryLeaseDeleteExpired)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantDeleted: 0,
		},
		{
			name: "db error",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryLeaseDeleteExpired)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			deleted, err := suite.repo.DeleteExpired(context.Background(), "Position Keeper", time.Now())
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantDeleted, deleted)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *leaseTestSuite) TestRepository_Insert() {
	lease := models.Lease{
		Resource:  "Position Keeper",
		Holder:    "worker-a",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	testCases := []struct {
		name    string
		wantErr error
		doMock  func()
	}{
		{
			name: "granted",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryLeaseInsert)).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "unique violation maps to lock conflict",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryLeaseInsert)).
					WillReturnError(&pq.Error{Code: pqUniqueViolation})
			},
			wantErr: common.ErrLockConflict,
		},
		{
			name: "other db error passes through",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryLeaseInsert)).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			err := suite.repo.Insert(context.Background(), lease)
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

func (suite *leaseTestSuite) TestRepository_Delete() {
	testCases := []struct {
		name        string
		wantDeleted int64
		wantErr     bool
		doMock      func()
	}{
		{
			name: "lease released",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryLeaseDelete)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantDeleted: 1,
		},
		{
			name: "already released is not an error",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryLeaseDelete)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantDeleted: 0,
		},
		{
			name: "db error",
			doMock: func() {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryLeaseDelete)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			deleted, err := suite.repo.Delete(context.Background(), "Position Keeper")
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantDeleted, deleted)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *leaseTestSuite) TestRepository_Get() {
	testCases := []struct {
		name    string
		wantErr error
		doMock  func()
	}{
		{
			name: "found",
			doMock: func() {
				rows := sqlmock.
					NewRows([]string{"lock_id", "holder", "expires_at"}).
					AddRow("Position Keeper", "worker-a", time.Now().Add(time.Minute))
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryLeaseGet)).
					WillReturnRows(rows)
			},
		},
		{
			name: "no lease",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryLeaseGet)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrDataNotFound,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			lease, err := suite.repo.Get(context.Background(), "Position Keeper")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, lease)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "worker-a", lease.Holder)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}
