package pricing

import (
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency renders a dollar amount with two decimals, e.g. "$12.40"
func FormatCurrency(amount float64) string {
	return "$" + exactDecimal(amount).StringFixed(2)
}

// FormatPercent renders a percentage with one decimal, e.g. "18.5%"
func FormatPercent(percent float64) string {
	return exactDecimal(percent).StringFixed(1) + "%"
}

// exactDecimal is the exact value of the binary float, so rounding matches the
// browser's toFixed: 1.005 is stored as 1.00499... and renders as "1.00".
func exactDecimal(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(big.NewFloat(f).Text('f', 1074))
	if err != nil {
		return decimal.NewFromFloat(f)
	}
	return d
}

// Margin is the gross margin of price over cost as a one-decimal percentage
// string. A missing price or cost yields "0.0".
func Margin(price, cost float64) string {
	if price == 0 || cost == 0 {
		return "0.0"
	}
	p := decimal.NewFromFloat(price)
	c := decimal.NewFromFloat(cost)
	return p.Sub(c).Div(p).Mul(hundred).StringFixed(1)
}

// FormatInventory renders pounds on hand with thousands separators
func FormatInventory(lbs float64) string {
	return humanize.CommafWithDigits(lbs, 3) + " lbs"
}

// Trend classifies a market change for display
func Trend(delta float64) string {
	switch {
	case delta > 0:
		return "up"
	case delta < 0:
		return "down"
	default:
		return "flat"
	}
}
