package reconcile

import (
	// Go Internal Packages
	"time"

	// Local Packages
	models "recon-stream/models"
)

// Policy is the time-based part of matching that upstream semantics leave
// configurable: how long to wait for a connector record before declaring it
// missing, and how far apart two timestamps may be while still counting as
// the same settlement date.
type Policy struct {
	// PendingWindow is how long after creation a merchant record may sit
	// without a connector counterpart before it is unmatched rather than
	// pending. Zero disables the pending state entirely.
	PendingWindow time.Duration

	// DateTolerance is the maximum allowed distance between the two sides'
	// effective timestamps. Zero means "same calendar day in Location".
	DateTolerance time.Duration

	// Location is the processing timezone for calendar-day comparison.
	Location *time.Location

	// AsOf anchors the pending-window check. Zero means time.Now(); tests
	// pin it for determinism.
	AsOf time.Time
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

func (p Policy) asOf() time.Time {
	if p.AsOf.IsZero() {
		return time.Now()
	}
	return p.AsOf
}

// Reconcile classifies one merchant-side record against its claimed
// connector-side counterpart, or its absence, and returns exactly one item.
// Inputs are never mutated. The matching rules apply in strict order and the
// first one that fires wins:
//
//  1. connector record absent -> unmatched with a missing discrepancy
//  2. amounts differ in the same currency -> unmatched with an amount
//     discrepancy, difference = connector - merchant
//  3. currencies differ -> unmatched with an amount discrepancy holding the
//     currency-qualified values; amounts are never converted or compared
//     numerically across currencies
//  4. statuses semantically incompatible -> disputed with a status discrepancy
//  5. effective dates beyond tolerance -> unmatched with a date discrepancy
//  6. either side carries a dispute marker -> disputed
//  7. otherwise matched, no discrepancy
//
// Before rule 1, a merchant record still inside the pending window is
// classified pending: the match has not been attempted yet, so no
// discrepancy is attached.
func Reconcile(merchant models.TransactionRecord, connector *models.TransactionRecord, policy Policy) models.ReconciliationItem {
	item := models.ReconciliationItem{Record: merchant, ReconciledAt: policy.asOf()}

	if connector == nil {
		if policy.PendingWindow > 0 && policy.asOf().Sub(merchant.CreatedAt) < policy.PendingWindow {
			item.Status = models.ReconPending
			return item
		}
		item.Status = models.ReconUnmatched
		item.Discrepancy = &models.Discrepancy{
			Type:        models.DiscrepancyMissing,
			MissingSide: "connector",
		}
		return item
	}

	if merchant.Currency == connector.Currency && merchant.AmountMinor != connector.AmountMinor {
		item.Status = models.ReconUnmatched
		item.Discrepancy = &models.Discrepancy{
			Type:            models.DiscrepancyAmount,
			ExpectedAmount:  &models.Money{AmountMinor: merchant.AmountMinor, Currency: merchant.Currency},
			ActualAmount:    &models.Money{AmountMinor: connector.AmountMinor, Currency: connector.Currency},
			DifferenceMinor: connector.AmountMinor - merchant.AmountMinor,
		}
		return item
	}

	if merchant.Currency != connector.Currency {
		item.Status = models.ReconUnmatched
		item.Discrepancy = &models.Discrepancy{
			Type:           models.DiscrepancyAmount,
			ExpectedAmount: &models.Money{AmountMinor: merchant.AmountMinor, Currency: merchant.Currency},
			ActualAmount:   &models.Money{AmountMinor: connector.AmountMinor, Currency: connector.Currency},
		}
		return item
	}

	if incompatibleStatuses(merchant.Status, connector.Status) {
		item.Status = models.ReconDisputed
		item.Discrepancy = &models.Discrepancy{
			Type:           models.DiscrepancyStatus,
			ExpectedStatus: merchant.Status,
			ActualStatus:   connector.Status,
		}
		return item
	}

	if !sameSettlementDate(merchant.EffectiveTime(), connector.EffectiveTime(), policy) {
		mt, ct := merchant.EffectiveTime(), connector.EffectiveTime()
		item.Status = models.ReconUnmatched
		item.Discrepancy = &models.Discrepancy{
			Type:         models.DiscrepancyDate,
			ExpectedDate: &mt,
			ActualDate:   &ct,
		}
		return item
	}

	if merchant.DisputeFlagged || connector.DisputeFlagged {
		item.Status = models.ReconDisputed
		item.Discrepancy = &models.Discrepancy{
			Type:           models.DiscrepancyStatus,
			ExpectedStatus: merchant.Status,
			ActualStatus:   connector.Status,
		}
		return item
	}

	item.Status = models.ReconMatched
	return item
}

// outcomeClass buckets statuses by money movement so the two sides can be
// compared semantically rather than literally.
type outcomeClass int

const (
	classOpen outcomeClass = iota
	classCaptured
	classFailed
)

func classOf(s models.PaymentStatus) outcomeClass {
	switch s {
	case models.StatusSucceeded, models.StatusPartiallyCaptured, models.StatusPartiallyCapturedAndCapturable:
		return classCaptured
	case models.StatusFailed, models.StatusCancelled:
		return classFailed
	}
	return classOpen
}

// incompatibleStatuses reports whether one side claims captured funds while
// the other claims the payment failed.
func incompatibleStatuses(merchant, connector models.PaymentStatus) bool {
	m, c := classOf(merchant), classOf(connector)
	return (m == classCaptured && c == classFailed) || (m == classFailed && c == classCaptured)
}

func sameSettlementDate(a, b time.Time, policy Policy) bool {
	if policy.DateTolerance > 0 {
		d := a.Sub(b)
		if d < 0 {
			d = -d
		}
		return d <= policy.DateTolerance
	}

	loc := policy.location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
