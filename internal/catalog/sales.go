package catalog

// SalesEntry records today's units sold for one product name. Names without
// a matching catalog product are tolerated and price out at zero.
type SalesEntry struct {
	Name     string
	Quantity int
}

// Sales is today's sales ledger. It is a slice rather than a map so entry
// order is deterministic, which fixes the tie-break order of quantity sorts.
type Sales []SalesEntry

// Quantity returns the units sold for a product name, 0 when absent.
func (s Sales) Quantity(name string) int {
	for _, e := range s {
		if e.Name == name {
			return e.Quantity
		}
	}
	return 0
}

// TotalQuantity sums units sold across all entries.
func (s Sales) TotalQuantity() int {
	total := 0
	for _, e := range s {
		total += e.Quantity
	}
	return total
}
