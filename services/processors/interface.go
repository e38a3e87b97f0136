package processors

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "recon-stream/models"
)

// ItemsRepository persists classified reconciliation items. The processor
// depends on this interface, not on the mongodb implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go -package=mock_processors
type ItemsRepository interface {
	InsertItems(ctx context.Context, items []models.ReconciliationItem) error
}

// DeadLetterQueue receives records the processor could not turn into items.
type DeadLetterQueue interface {
	Send(ctx context.Context, records []models.Record) error
}
