package aggregate

import (
	// Go Internal Packages
	"sort"

	// Local Packages
	models "recon-stream/models"
)

// Aggregate reduces a collection of reconciliation items to the statistics
// the reconciliation screens display. comparisonItems is the immediately
// preceding period of equal length and feeds only the trend deltas; pass nil
// when no prior period exists. The function is pure: it performs no I/O,
// never mutates its inputs, and identical inputs produce identical output.
// An empty collection is not an error; it yields zeroed counts and rates.
func Aggregate(items, comparisonItems []models.ReconciliationItem) models.ReconciliationStats {
	stats := reduce(items)

	prev := reduce(comparisonItems)
	stats.Trend = models.Trend{
		RateChangePoints:  stats.ReconciliationRate - prev.ReconciliationRate,
		VolumeChangeMinor: (stats.MatchedVolumeMinor + stats.UnmatchedVolumeMinor) - (prev.MatchedVolumeMinor + prev.UnmatchedVolumeMinor),
		CountChange:       stats.TotalCount - prev.TotalCount,
	}

	return stats
}

func reduce(items []models.ReconciliationItem) models.ReconciliationStats {
	var stats models.ReconciliationStats

	byConnector := make(map[string]*models.ConnectorStats)
	for _, item := range items {
		stats.TotalCount++

		cs := byConnector[item.Record.Connector]
		if cs == nil {
			cs = &models.ConnectorStats{Connector: item.Record.Connector}
			byConnector[item.Record.Connector] = cs
		}
		cs.TotalCount++

		switch item.Status {
		case models.ReconMatched:
			stats.MatchedCount++
			stats.MatchedVolumeMinor += item.Record.AmountMinor
			cs.MatchedCount++
			cs.MatchedVolumeMinor += item.Record.AmountMinor
		case models.ReconUnmatched:
			stats.UnmatchedCount++
			stats.UnmatchedVolumeMinor += item.Record.AmountMinor
			cs.UnmatchedVolumeMinor += item.Record.AmountMinor
		case models.ReconPending:
			stats.PendingCount++
		case models.ReconDisputed:
			stats.DisputedCount++
		}

		if item.Discrepancy != nil {
			stats.TotalDiscrepancies++
			stats.TotalDiscrepancyMinor += absMinor(item.Discrepancy.DifferenceMinor)
		}
	}

	stats.ReconciliationRate = rate(stats.MatchedCount, stats.TotalCount)
	stats.DiscrepancyRate = rate(stats.TotalDiscrepancies, stats.TotalCount)
	if stats.TotalDiscrepancies > 0 {
		stats.AvgDiscrepancyMinor = float64(stats.TotalDiscrepancyMinor) / float64(stats.TotalDiscrepancies)
	}

	stats.AutoMatchedCount = stats.MatchedCount
	stats.NeedsReviewCount = stats.UnmatchedCount + stats.DisputedCount
	stats.AutoMatchRate = rate(stats.AutoMatchedCount, stats.TotalCount)

	stats.Connectors = connectorBreakdown(byConnector)
	stats.BestConnector, stats.WorstConnector = bestAndWorst(stats.Connectors)

	return stats
}

// connectorBreakdown flattens the per-connector map into a deterministic,
// name-sorted slice so repeated aggregation is bit-identical.
func connectorBreakdown(byConnector map[string]*models.ConnectorStats) []models.ConnectorStats {
	if len(byConnector) == 0 {
		return nil
	}

	out := make([]models.ConnectorStats, 0, len(byConnector))
	for _, cs := range byConnector {
		cs.ReconciliationRate = rate(cs.MatchedCount, cs.TotalCount)
		out = append(out, *cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Connector < out[j].Connector })
	return out
}

// bestAndWorst picks argmax and argmin of the reconciliation rate; ties go to
// the connector with more transactions.
func bestAndWorst(connectors []models.ConnectorStats) (best, worst string) {
	if len(connectors) == 0 {
		return "", ""
	}

	bi, wi := 0, 0
	for i := 1; i < len(connectors); i++ {
		if beats(connectors[i], connectors[bi], true) {
			bi = i
		}
		if beats(connectors[i], connectors[wi], false) {
			wi = i
		}
	}
	return connectors[bi].Connector, connectors[wi].Connector
}

// beats reports whether a displaces b as the current best (or worst)
// candidate. Equal rates are broken by higher transaction count either way.
func beats(a, b models.ConnectorStats, best bool) bool {
	if a.ReconciliationRate != b.ReconciliationRate {
		if best {
			return a.ReconciliationRate > b.ReconciliationRate
		}
		return a.ReconciliationRate < b.ReconciliationRate
	}
	return a.TotalCount > b.TotalCount
}

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func absMinor(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
