package moneyutil

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders numbers with Korean-locale digit grouping.
var printer = message.NewPrinter(language.Korean)

// Won formats a won amount with thousands separators, e.g. 2800 -> "2,800원".
func Won(amount int64) string {
	return printer.Sprintf("%d원", amount)
}

// Percent formats a fraction as a percentage with one decimal digit,
// e.g. 0.15 -> "15.0%".
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// PercentRate formats a decimal fraction the same way as Percent.
func PercentRate(fraction decimal.Decimal) string {
	return Percent(fraction.InexactFloat64())
}
