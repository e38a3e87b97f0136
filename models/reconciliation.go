package models

import (
	// Go Internal Packages
	"time"
)

// ReconStatus is the outcome of matching one merchant-side record against
// its connector-side counterpart.
type ReconStatus string

const (
	ReconMatched   ReconStatus = "matched"
	ReconUnmatched ReconStatus = "unmatched"
	ReconPending   ReconStatus = "pending"
	ReconDisputed  ReconStatus = "disputed"
)

type DiscrepancyType string

const (
	DiscrepancyAmount  DiscrepancyType = "amount"
	DiscrepancyStatus  DiscrepancyType = "status"
	DiscrepancyDate    DiscrepancyType = "date"
	DiscrepancyMissing DiscrepancyType = "missing"
)

// Money is a currency-qualified amount in minor units.
type Money struct {
	AmountMinor int64  `json:"amount_minor" bson:"amount_minor"`
	Currency    string `json:"currency" bson:"currency"`
}

// Discrepancy explains why the two sides of a transaction disagree. The Type
// tag determines which fields are populated; a discrepancy never mixes fields
// from more than one variant.
type Discrepancy struct {
	Type DiscrepancyType `json:"type" bson:"type"`

	// amount variant: expected is the merchant side, actual the connector
	// side. DifferenceMinor is connector minus merchant, signed; it is zero
	// only for cross-currency mismatches, which are never compared
	// numerically.
	ExpectedAmount  *Money `json:"expected_amount,omitempty" bson:"expected_amount,omitempty"`
	ActualAmount    *Money `json:"actual_amount,omitempty" bson:"actual_amount,omitempty"`
	DifferenceMinor int64  `json:"difference_minor,omitempty" bson:"difference_minor,omitempty"`

	// status variant
	ExpectedStatus PaymentStatus `json:"expected_status,omitempty" bson:"expected_status,omitempty"`
	ActualStatus   PaymentStatus `json:"actual_status,omitempty" bson:"actual_status,omitempty"`

	// date variant
	ExpectedDate *time.Time `json:"expected_date,omitempty" bson:"expected_date,omitempty"`
	ActualDate   *time.Time `json:"actual_date,omitempty" bson:"actual_date,omitempty"`

	// missing variant: which side the record was absent from
	MissingSide string `json:"missing_side,omitempty" bson:"missing_side,omitempty"`
}

// ReconciliationItem is the immutable result of one match attempt. A matched
// item never carries a discrepancy; unmatched and disputed items resulting
// from an attempted match carry exactly one.
type ReconciliationItem struct {
	Record       TransactionRecord `json:"record" bson:"record"`
	Status       ReconStatus       `json:"status" bson:"status"`
	Discrepancy  *Discrepancy      `json:"discrepancy,omitempty" bson:"discrepancy,omitempty"`
	ReconciledAt time.Time         `json:"reconciled_at" bson:"reconciled_at"`
}

// ReconciliationRequest is the wire payload consumed from the reconciliation
// topic: a merchant-side record plus its claimed connector-side counterpart,
// or null when the connector has not reported one.
type ReconciliationRequest struct {
	Merchant  TransactionRecord  `json:"merchant"`
	Connector *TransactionRecord `json:"connector"`
}
