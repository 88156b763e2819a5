package formatter

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every rendered amount.
const CurrencySymbol = "￥"

var moneyPrinter = message.NewPrinter(language.English)

// Money renders d as a grouped amount with two decimals, e.g. ￥1,234.56.
func Money(d decimal.Decimal) string {
	return CurrencySymbol + moneyPrinter.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Percent renders an annual rate such as 12.5%.
func Percent(d decimal.Decimal) string {
	return d.String() + "%"
}

// Months renders a months estimate with one decimal.
func Months(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("%.1f", d.Round(1).InexactFloat64())
}
