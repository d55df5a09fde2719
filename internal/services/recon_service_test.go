package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReconService_Reconcile(t *testing.T) {
	testCases := []struct {
		name           string
		wantReconciled int64
		wantErr        bool
		doMock         func(h testServiceHelper)
	}{
		{
			name: "empty queue sweeps queued to unknown",
			doMock: func(h testServiceHelper) {
				h.mockQueueClient.EXPECT().ApproximateDepth(gomock.Any()).Return(int64(0), nil)
				h.mockSQLRepository.EXPECT().GetTransactionRepository().Return(h.mockTrxRepository)
				h.mockTrxRepository.EXPECT().
					BulkUpdateQueuedToUnknown(gomock.Any(), int64(1)).
					Return(int64(3), nil)
			},
			wantReconciled: 3,
		},
		{
			name: "non-empty queue touches nothing",
			doMock: func(h testServiceHelper) {
				h.mockQueueClient.EXPECT().ApproximateDepth(gomock.Any()).Return(int64(5), nil)
			},
			wantReconciled: 0,
		},
		{
			name: "depth probe failure",
			doMock: func(h testServiceHelper) {
				h.mockQueueClient.EXPECT().ApproximateDepth(gomock.Any()).Return(int64(0), assert.AnError)
			},
			wantErr: true,
		},
		{
			name: "sweep failure",
			doMock: func(h testServiceHelper) {
				h.mockQueueClient.EXPECT().ApproximateDepth(gomock.Any()).Return(int64(0), nil)
				h.mockSQLRepository.EXPECT().GetTransactionRepository().Return(h.mockTrxRepository)
				h.mockTrxRepository.EXPECT().
					BulkUpdateQueuedToUnknown(gomock.Any(), int64(1)).
					Return(int64(0), assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h)

			reconciled, err := h.reconService.Reconcile(context.Background())
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantReconciled, reconciled)
		})
	}
}
