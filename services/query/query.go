package query

import (
	// Go Internal Packages
	"sort"
	"strings"
	"time"

	// Local Packages
	models "recon-stream/models"
)

// FilterSpec is a declarative selection over reconciliation items. Every
// dimension is optional and independent: an unset dimension imposes no
// constraint, set dimensions combine with AND, and values inside one set
// dimension combine with OR.
type FilterSpec struct {
	Statuses         []models.ReconStatus
	From             time.Time
	To               time.Time
	MinAmountMinor   *int64
	MaxAmountMinor   *int64
	Connectors       []string
	Currencies       []string
	DiscrepancyTypes []models.DiscrepancyType
	Search           string
}

type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByAmount    SortField = "amount"
	SortByConnector SortField = "connector"
	SortByStatus    SortField = "status"
)

type SortSpec struct {
	Field      SortField
	Descending bool
}

// PageSpec selects one page after filtering and sorting. Number is 1-based;
// a Size of zero or less returns everything.
type PageSpec struct {
	Number int
	Size   int
}

// Page is the paginated result. TotalCount is the filtered count before
// pagination so callers can render page controls.
type Page struct {
	Items      []models.ReconciliationItem
	TotalCount int
	Number     int
	Size       int
}

// FilterAndSort applies the filter, sorts stably, then paginates. The input
// slice is never reordered or mutated; repeated calls with identical input
// return identical ordering.
func FilterAndSort(items []models.ReconciliationItem, filter FilterSpec, sortSpec SortSpec, page PageSpec) Page {
	selected := make([]models.ReconciliationItem, 0, len(items))
	for _, item := range items {
		if filter.matches(&item) {
			selected = append(selected, item)
		}
	}

	sortItems(selected, sortSpec)

	total := len(selected)
	if page.Size > 0 {
		number := page.Number
		if number < 1 {
			number = 1
		}
		start := (number - 1) * page.Size
		if start > total {
			start = total
		}
		end := start + page.Size
		if end > total {
			end = total
		}
		selected = selected[start:end]
		return Page{Items: selected, TotalCount: total, Number: number, Size: page.Size}
	}

	return Page{Items: selected, TotalCount: total, Number: 1, Size: total}
}

func (f FilterSpec) matches(item *models.ReconciliationItem) bool {
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, item.Status) {
		return false
	}
	if !f.From.IsZero() && item.Record.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && item.Record.CreatedAt.After(f.To) {
		return false
	}
	if f.MinAmountMinor != nil && item.Record.AmountMinor < *f.MinAmountMinor {
		return false
	}
	if f.MaxAmountMinor != nil && item.Record.AmountMinor > *f.MaxAmountMinor {
		return false
	}
	if len(f.Connectors) > 0 && !containsString(f.Connectors, item.Record.Connector) {
		return false
	}
	if len(f.Currencies) > 0 && !containsString(f.Currencies, item.Record.Currency) {
		return false
	}
	if len(f.DiscrepancyTypes) > 0 {
		if item.Discrepancy == nil || !containsDiscrepancyType(f.DiscrepancyTypes, item.Discrepancy.Type) {
			return false
		}
	}
	if f.Search != "" && !matchesSearch(&item.Record, f.Search) {
		return false
	}
	return true
}

// matchesSearch checks the free-text term case-insensitively against the
// record's identifying fields.
func matchesSearch(r *models.TransactionRecord, term string) bool {
	needle := strings.ToLower(term)
	for _, hay := range []string{r.ID, r.MerchantRef, r.ConnectorRef, r.Connector, r.CustomerID} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// sortItems orders the slice stably so equal keys keep their relative order
// across repeated calls.
func sortItems(items []models.ReconciliationItem, spec SortSpec) {
	less := lessFunc(spec.Field)
	if spec.Descending {
		asc := less
		less = func(a, b *models.ReconciliationItem) bool { return asc(b, a) }
	}
	sort.SliceStable(items, func(i, j int) bool { return less(&items[i], &items[j]) })
}

func lessFunc(field SortField) func(a, b *models.ReconciliationItem) bool {
	switch field {
	case SortByAmount:
		return func(a, b *models.ReconciliationItem) bool {
			return a.Record.AmountMinor < b.Record.AmountMinor
		}
	case SortByConnector:
		return func(a, b *models.ReconciliationItem) bool {
			return a.Record.Connector < b.Record.Connector
		}
	case SortByStatus:
		return func(a, b *models.ReconciliationItem) bool {
			return a.Status < b.Status
		}
	}
	return func(a, b *models.ReconciliationItem) bool {
		return a.Record.CreatedAt.Before(b.Record.CreatedAt)
	}
}

func containsStatus(set []models.ReconStatus, v models.ReconStatus) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsDiscrepancyType(set []models.DiscrepancyType, v models.DiscrepancyType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
