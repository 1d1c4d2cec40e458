package report

import (
	"context"
	"io"

	"github.com/jongchichi12/convenience-store-system/pkg/moneyutil"
)

// totalsSection closes the report with store-wide counts and the fixed
// completion marker.
type totalsSection struct{}

func (totalsSection) Name() string { return "totals" }

func (totalsSection) Render(ctx context.Context, snap *Snapshot, w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.printf("\n✅ 전체 요약\n")

	totalStock := 0
	var stockValue int64
	for _, p := range snap.Products {
		totalStock += p.Stock
		stockValue += int64(p.Stock) * p.Price
	}

	lw.printf(" 등록 상품: %d종\n", len(snap.Products))
	lw.printf(" 총 재고 수량: %d개\n", totalStock)
	lw.printf(" 총 재고 자산: %s\n", moneyutil.Won(stockValue))
	lw.printf(" 재고 부족 상품: %d종\n", len(snap.lowStock()))
	lw.printf(" 유통기한 임박 상품: %d종\n", len(snap.expiring()))
	lw.printf(" 오늘 총 판매량: %d개\n", snap.Sales.TotalQuantity())
	lw.printf(" 처리율 100%% 완료\n")

	return lw.err
}
