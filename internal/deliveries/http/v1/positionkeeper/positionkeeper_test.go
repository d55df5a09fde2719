package positionkeeper

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/models"
	"github.com/willipe53/onebor-position-keeper/internal/services/mock"
)

func Test_Handler_runPass(t *testing.T) {
	testHelper := keeperTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		expectation Expectation
		doMock      func()
	}{
		{
			name: "pass completed",
			expectation: Expectation{
				wantRes:  `{"trigger":"on-demand","holder":"keeper-1","conflict":false,"processed":3,"reconciled":2}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockKeeper.EXPECT().RunPass(gomock.Any(), models.KeeperTriggerOnDemand).
					Return(models.KeeperRunOut{
						Trigger:    models.KeeperTriggerOnDemand,
						Holder:     "keeper-1",
						Processed:  3,
						Reconciled: 2,
					}, nil)
			},
		},
		{
			name: "lock conflict",
			expectation: Expectation{
				wantRes:  `{"trigger":"on-demand","holder":"keeper-1","conflict":true,"processed":0,"reconciled":0}`,
				wantCode: 409,
			},
			doMock: func() {
				testHelper.mockKeeper.EXPECT().RunPass(gomock.Any(), models.KeeperTriggerOnDemand).
					Return(models.KeeperRunOut{
						Trigger:  models.KeeperTriggerOnDemand,
						Holder:   "keeper-1",
						Conflict: true,
					}, nil)
			},
		},
		{
			name: "error service",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockKeeper.EXPECT().RunPass(gomock.Any(), models.KeeperTriggerOnDemand).
					Return(models.KeeperRunOut{}, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/position-keeper/run", nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_refreshReferenceData(t *testing.T) {
	testHelper := keeperTestHelper(t)

	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		expectation Expectation
		doMock      func()
	}{
		{
			name: "refreshed",
			expectation: Expectation{
				wantRes:  `{"status":"refreshed"}`,
				wantCode: 200,
			},
			doMock: func() {
				testHelper.mockRefData.EXPECT().Refresh(gomock.Any()).Return(nil)
			},
		},
		{
			name: "error service",
			expectation: Expectation{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func() {
				testHelper.mockRefData.EXPECT().Refresh(gomock.Any()).Return(assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/position-keeper/refresh", nil)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

type testKeeperHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockKeeper  *mock.MockKeeperService
	mockRefData *mock.MockRefDataService
}

func keeperTestHelper(t *testing.T) testKeeperHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockKeeper := mock.NewMockKeeperService(mockCtrl)
	mockRefData := mock.NewMockRefDataService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockKeeper, mockRefData)

	return testKeeperHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockKeeper:  mockKeeper,
		mockRefData: mockRefData,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
