package processors_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"recon-stream/models"
	"recon-stream/services/processors"
	mock_processors "recon-stream/services/processors/mocks"
	"recon-stream/services/reconcile"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var baseTime = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func testPolicy() reconcile.Policy {
	return reconcile.Policy{
		PendingWindow: 24 * time.Hour,
		Location:      time.UTC,
		AsOf:          baseTime.Add(48 * time.Hour),
	}
}

func requestRecord(t *testing.T, req models.ReconciliationRequest) models.Record {
	t.Helper()
	value, err := json.Marshal(req)
	require.NoError(t, err)
	return models.Record{Key: []byte(req.Merchant.ID), Value: value, Topic: "reconciliation-requests"}
}

func merchantRecord(id string) models.TransactionRecord {
	return models.TransactionRecord{
		ID:          id,
		Type:        models.TypePayment,
		AmountMinor: 10000,
		Currency:    "USD",
		Status:      models.StatusSucceeded,
		Connector:   "stripe",
		MerchantRef: "order-1",
		CreatedAt:   baseTime,
	}
}

func TestProcessRecords_ClassifiesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_processors.NewMockItemsRepository(ctrl)
	dlq := mock_processors.NewMockDeadLetterQueue(ctrl)
	processor := processors.NewReconProcessor(zap.NewNop(), repo, dlq, testPolicy())

	connector := merchantRecord("pay_1")
	connector.ID = "ch_1"
	records := []models.Record{
		requestRecord(t, models.ReconciliationRequest{Merchant: merchantRecord("pay_1"), Connector: &connector}),
		requestRecord(t, models.ReconciliationRequest{Merchant: merchantRecord("pay_2")}),
	}

	repo.EXPECT().InsertItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []models.ReconciliationItem) error {
			require.Len(t, items, 2)
			assert.Equal(t, models.ReconMatched, items[0].Status)
			assert.Equal(t, models.ReconUnmatched, items[1].Status)
			require.NotNil(t, items[1].Discrepancy)
			assert.Equal(t, models.DiscrepancyMissing, items[1].Discrepancy.Type)
			return nil
		})

	err := processor.ProcessRecords(context.Background(), records)
	require.NoError(t, err)
}

func TestProcessRecords_MalformedRecordsGoToDLQ(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_processors.NewMockItemsRepository(ctrl)
	dlq := mock_processors.NewMockDeadLetterQueue(ctrl)
	processor := processors.NewReconProcessor(zap.NewNop(), repo, dlq, testPolicy())

	invalid := merchantRecord("pay_bad")
	invalid.Currency = "XXX"

	records := []models.Record{
		{Key: []byte("broken"), Value: []byte("{not json"), Topic: "reconciliation-requests"},
		requestRecord(t, models.ReconciliationRequest{Merchant: invalid}),
		requestRecord(t, models.ReconciliationRequest{Merchant: merchantRecord("pay_ok")}),
	}

	dlq.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, failed []models.Record) error {
			require.Len(t, failed, 2)
			return nil
		})
	repo.EXPECT().InsertItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []models.ReconciliationItem) error {
			require.Len(t, items, 1)
			assert.Equal(t, "pay_ok", items[0].Record.ID)
			return nil
		})

	err := processor.ProcessRecords(context.Background(), records)
	require.NoError(t, err)
}

func TestProcessRecords_RepositoryErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_processors.NewMockItemsRepository(ctrl)
	dlq := mock_processors.NewMockDeadLetterQueue(ctrl)
	processor := processors.NewReconProcessor(zap.NewNop(), repo, dlq, testPolicy())

	records := []models.Record{
		requestRecord(t, models.ReconciliationRequest{Merchant: merchantRecord("pay_1")}),
	}

	repo.EXPECT().InsertItems(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))

	err := processor.ProcessRecords(context.Background(), records)
	assert.Error(t, err)
}

func TestProcessRecords_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_processors.NewMockItemsRepository(ctrl)
	dlq := mock_processors.NewMockDeadLetterQueue(ctrl)
	processor := processors.NewReconProcessor(zap.NewNop(), repo, dlq, testPolicy())

	require.NoError(t, processor.ProcessRecords(context.Background(), nil))
}
