package calc

import "github.com/shopspring/decimal"

// Round2 rounds to 2 decimal places using decimal arithmetic, which avoids
// the float64 half-even surprises around values like 7.335.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
