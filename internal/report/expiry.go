package report

import (
	"context"
	"fmt"
	"io"

	"github.com/jongchichi12/convenience-store-system/internal/catalog"
	"github.com/jongchichi12/convenience-store-system/pkg/moneyutil"
)

// expirySection lists products inside the expiry warning window with their
// discount and marked-down price.
type expirySection struct{}

func (expirySection) Name() string { return "expiry_discount" }

func (expirySection) Render(ctx context.Context, snap *Snapshot, w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.printf("\n⏰ 유통기한 임박 할인 (%d일 이내)\n", snap.ExpiryWindowDays)

	items := snap.expiring()
	if len(items) == 0 {
		lw.printf("   → 유통기한 임박 상품이 없습니다\n")
		return lw.err
	}

	for _, p := range items {
		days, _ := catalog.DaysLeft(p, snap.Today)
		rate := catalog.DiscountRate(p, snap.Today, snap.Discount)
		lw.printf(" - %s: %s | 할인 %s | %s → %s\n",
			p.Name, daysLabel(days), moneyutil.PercentRate(rate),
			moneyutil.Won(p.Price), moneyutil.Won(catalog.DiscountedPrice(p, snap.Today, snap.Discount)))
	}
	return lw.err
}

func daysLabel(days int) string {
	switch days {
	case 0:
		return "오늘까지"
	case 1:
		return "1일 남음"
	case 2:
		return "2일 남음"
	default:
		return fmt.Sprintf("%d일 남음", days)
	}
}
