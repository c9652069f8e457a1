package entities

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderSearchFilters is a query-side value object. Every field is
// optional; zero values (nil pointers, empty strings) mean "no
// constraint". Filters combine with AND semantics.
type OrderSearchFilters struct {
	UserID    *int64
	VendorID  string
	Status    OrderStatusType
	DateFrom  *time.Time
	DateTo    *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Keyword   string
	Sort      string

	// Page is zero-based; nil means backend default.
	Page *int
	Size *int
}

// CacheKey renders the filters into a canonical string so that equal
// filter sets hit the same cache entry regardless of construction order.
func (f OrderSearchFilters) CacheKey() string {
	parts := make([]string, 0, 11)
	add := func(key, val string) {
		if val != "" {
			parts = append(parts, key+"="+val)
		}
	}

	if f.UserID != nil {
		add("userId", fmt.Sprintf("%d", *f.UserID))
	}
	add("vendorId", f.VendorID)
	add("status", f.Status.String())
	if f.DateFrom != nil {
		add("dateFrom", f.DateFrom.UTC().Format(time.RFC3339))
	}
	if f.DateTo != nil {
		add("dateTo", f.DateTo.UTC().Format(time.RFC3339))
	}
	if f.MinAmount != nil {
		add("minAmount", f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		add("maxAmount", f.MaxAmount.String())
	}
	add("keyword", f.Keyword)
	add("sort", f.Sort)
	if f.Page != nil {
		add("page", fmt.Sprintf("%d", *f.Page))
	}
	if f.Size != nil {
		add("size", fmt.Sprintf("%d", *f.Size))
	}

	sort.Strings(parts)
	return strings.Join(parts, "&")
}

// OrderSearchResult is one page of matches.
type OrderSearchResult struct {
	Orders     []Order
	Page       int
	Size       int
	TotalCount int64
}

// OrderStats is the aggregate read model for the dashboard header.
type OrderStats struct {
	CountsByStatus map[OrderStatusType]int64
	TotalOrders    int64
	TotalRevenue   decimal.Decimal
}
