package catalog

import "time"

// Category classifies a product. The set is closed.
type Category int

const (
	Beverage Category = iota
	Snack
	Food
	Goods
)

// Label returns the display label used in report output.
func (c Category) Label() string {
	switch c {
	case Beverage:
		return "음료"
	case Snack:
		return "과자"
	case Food:
		return "식품"
	case Goods:
		return "생활용품"
	default:
		return "기타"
	}
}

// String returns the identifier used in logs.
func (c Category) String() string {
	switch c {
	case Beverage:
		return "BEVERAGE"
	case Snack:
		return "SNACK"
	case Food:
		return "FOOD"
	case Goods:
		return "GOODS"
	default:
		return "UNKNOWN"
	}
}

// Product is one catalog entry. Name is the unique lookup key within any
// product collection. A nil Expiry means the product never expires. Fields
// are treated as immutable once constructed.
type Product struct {
	Name        string
	Price       int64 // won per unit
	Category    Category
	TargetStock int
	Stock       int
	Expiry      *time.Time
}

// OrderQuantity is how many units are needed to reach the target stock,
// never negative.
func (p Product) OrderQuantity() int {
	if q := p.TargetStock - p.Stock; q > 0 {
		return q
	}
	return 0
}

// Surplus is how far the current stock exceeds the target. Negative when
// the product is below target.
func (p Product) Surplus() int {
	return p.Stock - p.TargetStock
}
