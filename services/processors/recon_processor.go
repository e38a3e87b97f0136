package processors

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	errors "recon-stream/errors"
	models "recon-stream/models"
	reconcile "recon-stream/services/reconcile"

	// External Packages
	"go.uber.org/zap"
)

// ReconProcessor turns raw topic records into classified reconciliation
// items: unmarshal, validate, match, persist. Records that cannot be decoded
// or fail validation are handed to the dead letter queue instead of blocking
// the batch.
type ReconProcessor struct {
	Logger *zap.Logger
	Repo   ItemsRepository
	DLQ    DeadLetterQueue
	Policy reconcile.Policy
}

func NewReconProcessor(logger *zap.Logger, repo ItemsRepository, dlq DeadLetterQueue, policy reconcile.Policy) *ReconProcessor {
	return &ReconProcessor{Logger: logger, Repo: repo, DLQ: dlq, Policy: policy}
}

func (p *ReconProcessor) ProcessRecords(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	var items []models.ReconciliationItem
	var failed []models.Record

	for _, record := range records {
		var req models.ReconciliationRequest
		if err := json.Unmarshal(record.Value, &req); err != nil {
			p.Logger.Error("failed to unmarshal reconciliation request",
				zap.ByteString("key", record.Key), zap.Error(errors.InvalidBodyErr(err)))
			failed = append(failed, record)
			continue
		}

		if err := req.Merchant.Validate(); err != nil {
			p.Logger.Error("merchant record failed validation",
				zap.String("transaction_id", req.Merchant.ID), zap.Error(err))
			failed = append(failed, record)
			continue
		}
		if req.Connector != nil {
			if err := req.Connector.Validate(); err != nil {
				p.Logger.Error("connector record failed validation",
					zap.String("transaction_id", req.Connector.ID), zap.Error(err))
				failed = append(failed, record)
				continue
			}
		}

		items = append(items, reconcile.Reconcile(req.Merchant, req.Connector, p.Policy))
	}

	if len(failed) > 0 {
		if err := p.DLQ.Send(ctx, failed); err != nil {
			p.Logger.Error("failed to send records to dead letter queue", zap.Error(err))
		}
	}

	if len(items) == 0 {
		return nil
	}

	if err := p.Repo.InsertItems(ctx, items); err != nil {
		return fmt.Errorf("failed to insert reconciliation items: %v", err)
	}
	return nil
}
