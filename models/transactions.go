package models

import (
	// Go Internal Packages
	"time"

	// Local Packages
	errors "recon-stream/errors"
)

type TransactionType string

const (
	TypePayment TransactionType = "payment"
	TypeRefund  TransactionType = "refund"
	TypePayout  TransactionType = "payout"
	TypeFee     TransactionType = "fee"
)

// Valid reports whether t is one of the four enumerated variants.
func (t TransactionType) Valid() bool {
	switch t {
	case TypePayment, TypeRefund, TypePayout, TypeFee:
		return true
	}
	return false
}

// TransactionRecord represents one payment, refund, payout or fee event as
// reported by either the merchant system or a connector. Amounts are integers
// in minor currency units; no float arithmetic is used anywhere.
type TransactionRecord struct {
	ID             string          `json:"transaction_id" bson:"_id"`
	Type           TransactionType `json:"type" bson:"type"`
	AmountMinor    int64           `json:"amount_minor" bson:"amount_minor"`
	Currency       string          `json:"currency" bson:"currency"`
	Status         PaymentStatus   `json:"status" bson:"status"`
	Connector      string          `json:"connector" bson:"connector"`
	MerchantRef    string          `json:"merchant_reference" bson:"merchant_reference"`
	ConnectorRef   string          `json:"connector_reference,omitempty" bson:"connector_reference,omitempty"`
	CustomerID     string          `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	DisputeFlagged bool            `json:"dispute_flagged,omitempty" bson:"dispute_flagged,omitempty"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty" bson:"processed_at,omitempty"`
}

// EffectiveTime is the timestamp used for date matching: the processed time
// when the connector reported one, otherwise the creation time.
func (r *TransactionRecord) EffectiveTime() time.Time {
	if r.ProcessedAt != nil {
		return *r.ProcessedAt
	}
	return r.CreatedAt
}

// Validate checks the record invariants before it enters the pipeline.
func (r *TransactionRecord) Validate() error {
	ve := errors.ValidationErrs()

	if r.ID == "" {
		ve.Add("transaction_id", "cannot be empty")
	}
	if !r.Type.Valid() {
		ve.Add("type", "must be one of payment, refund, payout, fee")
	}
	if r.AmountMinor < 0 {
		ve.Add("amount_minor", "cannot be negative")
	}
	if !KnownCurrency(r.Currency) {
		ve.Add("currency", "not a recognized ISO code")
	}
	if !r.Status.Valid() {
		ve.Add("status", "not a known payment status")
	}
	if r.CreatedAt.IsZero() {
		ve.Add("created_at", "cannot be zero")
	}

	if err := ve.Err(); err != nil {
		return errors.ValidationFailedErr(err)
	}
	return nil
}
