package report

import (
	"context"
	"io"

	"github.com/jongchichi12/convenience-store-system/pkg/moneyutil"
)

// topSellerSection ranks today's sales by quantity, capped at the
// configured limit.
type topSellerSection struct{}

func (topSellerSection) Name() string { return "top_sellers" }

func (topSellerSection) Render(ctx context.Context, snap *Snapshot, w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.printf("\n🏆 오늘의 판매 TOP %d\n", snap.TopSellerLimit)

	entries := snap.salesByQuantity()
	if len(entries) > snap.TopSellerLimit {
		entries = entries[:snap.TopSellerLimit]
	}
	if len(entries) == 0 {
		lw.printf("   → 판매 기록이 없습니다\n")
		return lw.err
	}

	for i, e := range entries {
		revenue := snap.priceOf(e.Name) * int64(e.Quantity)
		lw.printf(" %d위. %s - %d개 판매, 매출 %s\n", i+1, e.Name, e.Quantity, moneyutil.Won(revenue))
	}
	return lw.err
}

// salesSummarySection prints the full ledger with quantity and revenue
// totals, in the same descending-by-quantity order as the top sellers.
type salesSummarySection struct{}

func (salesSummarySection) Name() string { return "sales_summary" }

func (salesSummarySection) Render(ctx context.Context, snap *Snapshot, w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.printf("\n📋 판매 요약\n")

	entries := snap.salesByQuantity()

	totalQty := 0
	var totalRevenue int64
	for _, e := range entries {
		totalQty += e.Quantity
		totalRevenue += snap.priceOf(e.Name) * int64(e.Quantity)
	}
	lw.printf(" 총 판매 수량: %d개 / 총 매출: %s\n", totalQty, moneyutil.Won(totalRevenue))

	if len(entries) == 0 {
		lw.printf("   → 판매 기록이 없습니다\n")
		return lw.err
	}

	for _, e := range entries {
		price := snap.priceOf(e.Name)
		lw.printf(" - %s: %d개 × %s = %s\n",
			e.Name, e.Quantity, moneyutil.Won(price), moneyutil.Won(price*int64(e.Quantity)))
	}
	return lw.err
}
