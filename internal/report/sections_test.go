package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongchichi12/convenience-store-system/internal/catalog"
)

var testToday = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func testPolicy() catalog.DiscountPolicy {
	return catalog.DiscountPolicy{
		0: decimal.NewFromFloat(0.7),
		1: decimal.NewFromFloat(0.5),
		2: decimal.NewFromFloat(0.3),
		3: decimal.NewFromFloat(0.2),
	}
}

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		Products:         catalog.SampleProducts(testToday),
		Sales:            catalog.SampleSales(),
		Today:            testToday,
		StockThreshold:   0.3,
		ExpiryWindowDays: 3,
		TopSellerLimit:   5,
		Discount:         testPolicy(),
	}
}

func render(t *testing.T, s Section, snap *Snapshot) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Render(context.Background(), snap, &buf))
	return buf.String()
}

func TestLowStockSection(t *testing.T) {
	out := render(t, lowStockSection{}, sampleSnapshot())

	// ascending by stock rate: 0.15, 0.24, 0.25
	first := strings.Index(out, "바나나우유")
	second := strings.Index(out, "새우과자")
	third := strings.Index(out, "도시락")
	require.True(t, first > 0 && second > 0 && third > 0, out)
	assert.Less(t, first, second)
	assert.Less(t, second, third)

	assert.Contains(t, out, "현재 3개 / 목표 20개 → 발주 17개 (재고율 15.0%)")
	assert.NotContains(t, out, "재고 부족 상품이 없습니다")
	// above the threshold, stays out
	assert.NotContains(t, out, "즉석라면")
}

func TestLowStockSectionEmpty(t *testing.T) {
	snap := sampleSnapshot()
	snap.Products = []catalog.Product{
		{Name: "콜라", Price: 2000, TargetStock: 30, Stock: 24},
	}
	out := render(t, lowStockSection{}, snap)

	assert.Contains(t, out, "재고 부족 상품이 없습니다")
	assert.NotContains(t, out, " - ")
}

func TestExpirySection(t *testing.T) {
	out := render(t, expirySection{}, sampleSnapshot())

	assert.Contains(t, out, "삼각김밥: 오늘까지 | 할인 70.0% | 2,800원 → 840원")
	assert.Contains(t, out, "도시락: 1일 남음 | 할인 50.0% | 4,500원 → 2,250원")
	assert.Contains(t, out, "바나나우유: 2일 남음 | 할인 30.0% | 1,700원 → 1,190원")

	// soonest first
	assert.Less(t, strings.Index(out, "삼각김밥"), strings.Index(out, "도시락"))
	assert.Less(t, strings.Index(out, "도시락"), strings.Index(out, "바나나우유"))

	// outside the window
	assert.NotContains(t, out, "콜라")
}

func TestExpirySectionEmpty(t *testing.T) {
	snap := sampleSnapshot()
	snap.Products = []catalog.Product{{Name: "건전지", Price: 3500, TargetStock: 10, Stock: 13}}
	out := render(t, expirySection{}, snap)

	assert.Contains(t, out, "유통기한 임박 상품이 없습니다")
}

func TestDaysLabel(t *testing.T) {
	assert.Equal(t, "오늘까지", daysLabel(0))
	assert.Equal(t, "1일 남음", daysLabel(1))
	assert.Equal(t, "2일 남음", daysLabel(2))
	assert.Equal(t, "7일 남음", daysLabel(7))
}

func TestTopSellerSection(t *testing.T) {
	out := render(t, topSellerSection{}, sampleSnapshot())

	assert.Contains(t, out, "1위. 삼각김밥 - 18개 판매, 매출 50,400원")
	assert.Contains(t, out, "2위. 콜라 - 12개 판매, 매출 24,000원")
	assert.Contains(t, out, "5위. 즉석라면")

	// capped at the limit
	assert.NotContains(t, out, "6위.")
	assert.NotContains(t, out, "새우과자")
}

func TestTopSellerTieKeepsLedgerOrder(t *testing.T) {
	snap := sampleSnapshot()
	snap.Sales = catalog.Sales{
		{Name: "콜라", Quantity: 7},
		{Name: "초코바", Quantity: 7},
		{Name: "도시락", Quantity: 9},
	}
	out := render(t, topSellerSection{}, snap)

	assert.Contains(t, out, "1위. 도시락")
	// stable sort: the tie resolves to ledger order
	assert.Less(t, strings.Index(out, "2위. 콜라"), strings.Index(out, "3위. 초코바"))
}

func TestTopSellerUnknownNamePricesAtZero(t *testing.T) {
	snap := sampleSnapshot()
	snap.Sales = catalog.Sales{{Name: "단종상품", Quantity: 4}}
	out := render(t, topSellerSection{}, snap)

	assert.Contains(t, out, "1위. 단종상품 - 4개 판매, 매출 0원")
}

func TestSalesSummarySection(t *testing.T) {
	out := render(t, salesSummarySection{}, sampleSnapshot())

	assert.Contains(t, out, "총 판매 수량: 60개 / 총 매출: 128,300원")
	assert.Contains(t, out, " - 삼각김밥: 18개 × 2,800원 = 50,400원")
	// unbounded: entries past the top-5 cap still appear
	assert.Contains(t, out, " - 건전지: 1개 × 3,500원 = 3,500원")
}

func TestSalesSectionsEmptyLedger(t *testing.T) {
	snap := sampleSnapshot()
	snap.Sales = nil

	top := render(t, topSellerSection{}, snap)
	assert.Contains(t, top, "판매 기록이 없습니다")

	summary := render(t, salesSummarySection{}, snap)
	assert.Contains(t, summary, "총 판매 수량: 0개 / 총 매출: 0원")
	assert.Contains(t, summary, "판매 기록이 없습니다")
}

func TestAnalyticsSection(t *testing.T) {
	out := render(t, analyticsSection{}, sampleSnapshot())

	// 9 sold / 3 in stock
	assert.Contains(t, out, "유통기한 상품 중 회전율 1위: 바나나우유 (회전율 3.00)")
	// 1 sold / 13 in stock
	assert.Contains(t, out, "회전율 최저: 건전지 (회전율 0.08)")
	// identical metric as the expirable rank, reported under its own label
	assert.Contains(t, out, "운영 효율 1위: 바나나우유 (회전율 3.00)")

	assert.Contains(t, out, "과잉 재고: 즉석라면(+5), 건전지(+3)")
	assert.Contains(t, out, "발주 대상: 3개 상품, 총 발주 수량 51개")
}

func TestAnalyticsZeroStockTurnover(t *testing.T) {
	snap := sampleSnapshot()
	snap.Products = []catalog.Product{{Name: "품절상품", Price: 1000, TargetStock: 10, Stock: 0}}
	snap.Sales = catalog.Sales{{Name: "품절상품", Quantity: 4}}

	// zero stock counts as one, so turnover is 4.00 and defined
	out := render(t, analyticsSection{}, snap)
	assert.Contains(t, out, "회전율 최저: 품절상품 (회전율 4.00)")
}

func TestAnalyticsNoOverStock(t *testing.T) {
	snap := sampleSnapshot()
	snap.Products = []catalog.Product{{Name: "콜라", Price: 2000, TargetStock: 30, Stock: 24}}
	out := render(t, analyticsSection{}, snap)

	assert.Contains(t, out, "과잉 재고: 없음")
}

func TestTotalsSection(t *testing.T) {
	out := render(t, totalsSection{}, sampleSnapshot())

	assert.Contains(t, out, "등록 상품: 8종")
	assert.Contains(t, out, "총 재고 수량: 126개")
	assert.Contains(t, out, "총 재고 자산: 239,300원")
	assert.Contains(t, out, "재고 부족 상품: 3종")
	assert.Contains(t, out, "유통기한 임박 상품: 3종")
	assert.Contains(t, out, "오늘 총 판매량: 60개")
	assert.Contains(t, out, "처리율 100% 완료")
}
