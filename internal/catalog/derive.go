package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountPolicy maps days-remaining-until-expiry to a discount fraction in
// [0,1). The table is sparse: a missing day count means no discount, also
// for day counts beyond the largest key.
type DiscountPolicy map[int]decimal.Decimal

// DaysLeft returns the whole calendar days between today and the product's
// expiry date. Negative when already expired. ok is false when the product
// never expires.
func DaysLeft(p Product, today time.Time) (days int, ok bool) {
	if p.Expiry == nil {
		return 0, false
	}
	diff := truncateDay(*p.Expiry).Sub(truncateDay(today))
	return int(diff.Hours() / 24), true
}

// ExpiringSoon reports whether the product expires within windowDays,
// today included. Already-expired products are not "soon".
func ExpiringSoon(p Product, today time.Time, windowDays int) bool {
	days, ok := DaysLeft(p, today)
	return ok && days >= 0 && days <= windowDays
}

// DiscountRate looks up today's discount fraction for the product.
func DiscountRate(p Product, today time.Time, policy DiscountPolicy) decimal.Decimal {
	days, ok := DaysLeft(p, today)
	if !ok {
		return decimal.Zero
	}
	rate, found := policy[days]
	if !found {
		return decimal.Zero
	}
	return rate
}

// DiscountedPrice applies today's discount, rounding up so a discount never
// produces fractional won. The result never exceeds the list price.
func DiscountedPrice(p Product, today time.Time, policy DiscountPolicy) int64 {
	rate := DiscountRate(p, today, policy)
	if rate.IsZero() {
		return p.Price
	}
	price := decimal.NewFromInt(p.Price)
	return price.Mul(decimal.NewFromInt(1).Sub(rate)).Ceil().IntPart()
}

// StockRate is current stock over target stock, 0 when the target is unset.
func StockRate(p Product) float64 {
	if p.TargetStock <= 0 {
		return 0
	}
	return float64(p.Stock) / float64(p.TargetStock)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
