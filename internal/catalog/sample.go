package catalog

import "time"

// SampleProducts returns the fixed demo catalog. Expiry dates are laid out
// relative to today so the fixture behaves the same on any run date.
func SampleProducts(today time.Time) []Product {
	return []Product{
		{Name: "삼각김밥", Price: 2800, Category: Food, TargetStock: 30, Stock: 12, Expiry: expiresIn(today, 0)},
		{Name: "도시락", Price: 4500, Category: Food, TargetStock: 20, Stock: 5, Expiry: expiresIn(today, 1)},
		{Name: "바나나우유", Price: 1700, Category: Beverage, TargetStock: 20, Stock: 3, Expiry: expiresIn(today, 2)},
		{Name: "콜라", Price: 2000, Category: Beverage, TargetStock: 30, Stock: 24, Expiry: expiresIn(today, 90)},
		{Name: "즉석라면", Price: 1200, Category: Food, TargetStock: 40, Stock: 45},
		{Name: "새우과자", Price: 1500, Category: Snack, TargetStock: 25, Stock: 6, Expiry: expiresIn(today, 180)},
		{Name: "초코바", Price: 1200, Category: Snack, TargetStock: 20, Stock: 18, Expiry: expiresIn(today, 60)},
		{Name: "건전지", Price: 3500, Category: Goods, TargetStock: 10, Stock: 13},
	}
}

// SampleSales returns the fixed demo sales ledger.
func SampleSales() Sales {
	return Sales{
		{Name: "삼각김밥", Quantity: 18},
		{Name: "콜라", Quantity: 12},
		{Name: "바나나우유", Quantity: 9},
		{Name: "초코바", Quantity: 7},
		{Name: "즉석라면", Quantity: 6},
		{Name: "새우과자", Quantity: 4},
		{Name: "도시락", Quantity: 3},
		{Name: "건전지", Quantity: 1},
	}
}

func expiresIn(today time.Time, days int) *time.Time {
	t := today.AddDate(0, 0, days)
	return &t
}
