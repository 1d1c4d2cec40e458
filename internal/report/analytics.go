package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jongchichi12/convenience-store-system/internal/catalog"
)

// analyticsSection reports turnover ranks, over-stocked products and the
// ordering workload. The expirable-turnover rank and the overall efficiency
// rank both use the same turnover metric, matching the store's established
// report format.
type analyticsSection struct{}

func (analyticsSection) Name() string { return "analytics" }

func (analyticsSection) Render(ctx context.Context, snap *Snapshot, w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.printf("\n📊 재고 분석\n")

	if best, ok := bestTurnover(snap, expirableOnly); ok {
		lw.printf(" - 유통기한 상품 중 회전율 1위: %s (회전율 %.2f)\n", best.Name, turnover(snap, best))
	} else {
		lw.printf(" - 유통기한 상품이 없습니다\n")
	}

	if worst, ok := worstTurnover(snap); ok {
		lw.printf(" - 회전율 최저: %s (회전율 %.2f)\n", worst.Name, turnover(snap, worst))
	}

	if best, ok := bestTurnover(snap, everyProduct); ok {
		lw.printf(" - 운영 효율 1위: %s (회전율 %.2f)\n", best.Name, turnover(snap, best))
	}

	lw.printf(" - 과잉 재고: %s\n", overStockLine(snap))

	low := snap.lowStock()
	totalOrder := 0
	for _, p := range low {
		totalOrder += p.OrderQuantity()
	}
	lw.printf(" - 발주 대상: %d개 상품, 총 발주 수량 %d개\n", len(low), totalOrder)

	return lw.err
}

// turnover is today's units sold over current stock, with zero stock
// counted as one to keep the ratio defined.
func turnover(snap *Snapshot, p catalog.Product) float64 {
	stock := p.Stock
	if stock < 1 {
		stock = 1
	}
	return float64(snap.Sales.Quantity(p.Name)) / float64(stock)
}

func expirableOnly(p catalog.Product) bool { return p.Expiry != nil }
func everyProduct(catalog.Product) bool    { return true }

// bestTurnover picks the highest-turnover product among those matching the
// filter. The first of equal maxima wins, keeping catalog order.
func bestTurnover(snap *Snapshot, match func(catalog.Product) bool) (catalog.Product, bool) {
	var best catalog.Product
	found := false
	for _, p := range snap.Products {
		if !match(p) {
			continue
		}
		if !found || turnover(snap, p) > turnover(snap, best) {
			best = p
			found = true
		}
	}
	return best, found
}

func worstTurnover(snap *Snapshot) (catalog.Product, bool) {
	var worst catalog.Product
	found := false
	for _, p := range snap.Products {
		if !found || turnover(snap, p) < turnover(snap, worst) {
			worst = p
			found = true
		}
	}
	return worst, found
}

// overStockLine joins products above target, biggest surplus first.
func overStockLine(snap *Snapshot) string {
	over := make([]catalog.Product, 0, len(snap.Products))
	for _, p := range snap.Products {
		if p.Stock > p.TargetStock {
			over = append(over, p)
		}
	}
	if len(over) == 0 {
		return "없음"
	}

	sort.SliceStable(over, func(i, j int) bool {
		return over[i].Surplus() > over[j].Surplus()
	})

	parts := make([]string, 0, len(over))
	for _, p := range over {
		parts = append(parts, fmt.Sprintf("%s(+%d)", p.Name, p.Surplus()))
	}
	return strings.Join(parts, ", ")
}
