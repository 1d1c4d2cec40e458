package report

import (
	"sort"
	"time"

	"github.com/jongchichi12/convenience-store-system/internal/catalog"
)

// Snapshot is the read-only input of one report run: the catalog, today's
// sales ledger and the reporting policies. Sections never mutate it.
type Snapshot struct {
	Products []catalog.Product
	Sales    catalog.Sales
	Today    time.Time

	StockThreshold   float64
	ExpiryWindowDays int
	TopSellerLimit   int
	Discount         catalog.DiscountPolicy
}

// priceOf looks up a product's unit price by name, 0 for unknown names.
func (s *Snapshot) priceOf(name string) int64 {
	for _, p := range s.Products {
		if p.Name == name {
			return p.Price
		}
	}
	return 0
}

// lowStock selects products at or below the stock threshold, most critical
// first. The sort is stable on the single key, so equal rates keep catalog
// order.
func (s *Snapshot) lowStock() []catalog.Product {
	items := make([]catalog.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if catalog.StockRate(p) <= s.StockThreshold {
			items = append(items, p)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return catalog.StockRate(items[i]) < catalog.StockRate(items[j])
	})
	return items
}

// expiring selects products inside the expiry warning window, soonest first.
func (s *Snapshot) expiring() []catalog.Product {
	items := make([]catalog.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if catalog.ExpiringSoon(p, s.Today, s.ExpiryWindowDays) {
			items = append(items, p)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		di, _ := catalog.DaysLeft(items[i], s.Today)
		dj, _ := catalog.DaysLeft(items[j], s.Today)
		return di < dj
	})
	return items
}

// salesByQuantity returns a copy of the ledger sorted descending by
// quantity. Ties keep ledger order (stable sort, single key).
func (s *Snapshot) salesByQuantity() catalog.Sales {
	entries := make(catalog.Sales, len(s.Sales))
	copy(entries, s.Sales)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity > entries[j].Quantity
	})
	return entries
}
