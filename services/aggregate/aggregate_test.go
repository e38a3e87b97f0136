package aggregate_test

import (
	"reflect"
	"testing"
	"time"

	"recon-stream/models"
	"recon-stream/services/aggregate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func item(connector string, status models.ReconStatus, amountMinor int64, diffMinor int64) models.ReconciliationItem {
	it := models.ReconciliationItem{
		Record: models.TransactionRecord{
			ID:          connector + "-" + string(status),
			Type:        models.TypePayment,
			AmountMinor: amountMinor,
			Currency:    "USD",
			Status:      models.StatusSucceeded,
			Connector:   connector,
			CreatedAt:   baseTime,
		},
		Status:       status,
		ReconciledAt: baseTime,
	}
	if status == models.ReconUnmatched {
		it.Discrepancy = &models.Discrepancy{
			Type:            models.DiscrepancyAmount,
			DifferenceMinor: diffMinor,
		}
	}
	if status == models.ReconDisputed {
		it.Discrepancy = &models.Discrepancy{
			Type:           models.DiscrepancyStatus,
			ExpectedStatus: models.StatusSucceeded,
			ActualStatus:   models.StatusFailed,
		}
	}
	return it
}

func TestAggregate_EmptyInput(t *testing.T) {
	stats := aggregate.Aggregate(nil, nil)

	assert.Zero(t, stats.TotalCount)
	assert.Zero(t, stats.ReconciliationRate)
	assert.Zero(t, stats.DiscrepancyRate)
	assert.Zero(t, stats.AvgDiscrepancyMinor)
	assert.Empty(t, stats.Connectors)
	assert.Empty(t, stats.BestConnector)
}

func TestAggregate_RatesAndVolumes(t *testing.T) {
	items := []models.ReconciliationItem{
		item("stripe", models.ReconMatched, 10000, 0),
		item("stripe", models.ReconMatched, 5000, 0),
		item("stripe", models.ReconUnmatched, 2000, -500),
		item("adyen", models.ReconPending, 3000, 0),
		item("adyen", models.ReconDisputed, 7000, 0),
	}

	stats := aggregate.Aggregate(items, nil)

	assert.Equal(t, 5, stats.TotalCount)
	assert.Equal(t, 2, stats.MatchedCount)
	assert.Equal(t, 1, stats.UnmatchedCount)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.DisputedCount)

	assert.InDelta(t, 40.0, stats.ReconciliationRate, 1e-9)
	assert.Equal(t, int64(15000), stats.MatchedVolumeMinor)
	assert.Equal(t, int64(2000), stats.UnmatchedVolumeMinor)

	// Two items carry a discrepancy: the unmatched amount one and the
	// disputed status one.
	assert.Equal(t, 2, stats.TotalDiscrepancies)
	assert.InDelta(t, 40.0, stats.DiscrepancyRate, 1e-9)
	assert.Equal(t, int64(500), stats.TotalDiscrepancyMinor)
	assert.InDelta(t, 250.0, stats.AvgDiscrepancyMinor, 1e-9)

	assert.Equal(t, 2, stats.AutoMatchedCount)
	assert.Equal(t, 2, stats.NeedsReviewCount)
}

func TestAggregate_ConnectorBreakdown(t *testing.T) {
	items := []models.ReconciliationItem{
		item("stripe", models.ReconMatched, 1000, 0),
		item("stripe", models.ReconMatched, 1000, 0),
		item("stripe", models.ReconUnmatched, 1000, -100),
		item("adyen", models.ReconMatched, 1000, 0),
		item("adyen", models.ReconUnmatched, 1000, -100),
		item("checkout", models.ReconUnmatched, 1000, -100),
	}

	stats := aggregate.Aggregate(items, nil)

	require.Len(t, stats.Connectors, 3)
	// Deterministic name order.
	assert.Equal(t, "adyen", stats.Connectors[0].Connector)
	assert.Equal(t, "checkout", stats.Connectors[1].Connector)
	assert.Equal(t, "stripe", stats.Connectors[2].Connector)

	assert.Equal(t, "stripe", stats.BestConnector)
	assert.Equal(t, "checkout", stats.WorstConnector)
}

func TestAggregate_BestConnectorTieBreaksOnVolume(t *testing.T) {
	// Both connectors reconcile 100%; the busier one wins the tie.
	items := []models.ReconciliationItem{
		item("stripe", models.ReconMatched, 1000, 0),
		item("stripe", models.ReconMatched, 1000, 0),
		item("adyen", models.ReconMatched, 1000, 0),
	}

	stats := aggregate.Aggregate(items, nil)

	assert.Equal(t, "stripe", stats.BestConnector)
	assert.Equal(t, "stripe", stats.WorstConnector)
}

func TestAggregate_Trend(t *testing.T) {
	current := []models.ReconciliationItem{
		item("stripe", models.ReconMatched, 6000, 0),
		item("stripe", models.ReconMatched, 4000, 0),
		item("stripe", models.ReconUnmatched, 2000, -500),
		item("stripe", models.ReconUnmatched, 1000, -200),
	}
	previous := []models.ReconciliationItem{
		item("stripe", models.ReconMatched, 5000, 0),
		item("stripe", models.ReconUnmatched, 5000, -300),
	}

	stats := aggregate.Aggregate(current, previous)

	// 50% matched now vs 50% before: no rate movement.
	assert.InDelta(t, 0.0, stats.Trend.RateChangePoints, 1e-9)
	// 13000 total volume now vs 10000 before.
	assert.Equal(t, int64(3000), stats.Trend.VolumeChangeMinor)
	assert.Equal(t, 2, stats.Trend.CountChange)
}

func TestAggregate_Deterministic(t *testing.T) {
	items := []models.ReconciliationItem{
		item("stripe", models.ReconMatched, 10000, 0),
		item("adyen", models.ReconUnmatched, 2000, -500),
		item("checkout", models.ReconDisputed, 7000, 0),
	}
	previous := []models.ReconciliationItem{
		item("stripe", models.ReconMatched, 9000, 0),
	}

	first := aggregate.Aggregate(items, previous)
	second := aggregate.Aggregate(items, previous)

	assert.True(t, reflect.DeepEqual(first, second), "aggregation must be bit-identical on identical input")
}
