package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$12.40", FormatCurrency(12.4))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$4.88", FormatCurrency(4.875))
}

func TestFormatCurrency_RoundsStoredBinaryValue(t *testing.T) {
	// Same results as Number.prototype.toFixed in the browser table
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 1.005, want: "$1.00"},
		{amount: 1.015, want: "$1.01"},
		{amount: 0.125, want: "$0.13"},
		{amount: 2.675, want: "$2.67"},
		{amount: 10.235, want: "$10.23"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount), "%v", tt.amount)
	}
	assert.Equal(t, "0.1%", FormatPercent(0.05))
	assert.Equal(t, "1.1%", FormatPercent(1.05))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "18.5%", FormatPercent(18.46))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "-1.3%", FormatPercent(-1.25))
}

func TestMargin(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		cost  float64
		want  string
	}{
		{name: "quarter margin", price: 10, cost: 7.5, want: "25.0"},
		{name: "repeating fraction", price: 3, cost: 1, want: "66.7"},
		{name: "negative margin", price: 8, cost: 10, want: "-25.0"},
		{name: "missing price", price: 0, cost: 5, want: "0.0"},
		{name: "missing cost", price: 5, cost: 0, want: "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Margin(tt.price, tt.cost))
		})
	}
}

func TestFormatInventory(t *testing.T) {
	assert.Equal(t, "1,234.5 lbs", FormatInventory(1234.5))
	assert.Equal(t, "12,000 lbs", FormatInventory(12000))
	assert.Equal(t, "0 lbs", FormatInventory(0))
}

func TestTrend(t *testing.T) {
	assert.Equal(t, "up", Trend(0.5))
	assert.Equal(t, "down", Trend(-0.5))
	assert.Equal(t, "flat", Trend(0))
}
