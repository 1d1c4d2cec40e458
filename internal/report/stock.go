package report

import (
	"context"
	"io"

	"github.com/jongchichi12/convenience-store-system/internal/catalog"
	"github.com/jongchichi12/convenience-store-system/pkg/moneyutil"
)

// lowStockSection lists products at or below the stock-rate threshold with
// the quantity to order.
type lowStockSection struct{}

func (lowStockSection) Name() string { return "low_stock" }

func (lowStockSection) Render(ctx context.Context, snap *Snapshot, w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.printf("\n📦 재고 부족 알림 (재고율 %s 이하)\n", moneyutil.Percent(snap.StockThreshold))

	items := snap.lowStock()
	if len(items) == 0 {
		lw.printf("   → 재고 부족 상품이 없습니다\n")
		return lw.err
	}

	for _, p := range items {
		lw.printf(" - %s [%s] 현재 %d개 / 목표 %d개 → 발주 %d개 (재고율 %s)\n",
			p.Name, p.Category.Label(), p.Stock, p.TargetStock,
			p.OrderQuantity(), moneyutil.Percent(catalog.StockRate(p)))
	}
	return lw.err
}
