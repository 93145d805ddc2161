package pricing

import "math"

// TaxRate is the IVA applied to every quote. Fixed by business rule, not
// configurable.
const TaxRate = 0.16

// Totals groups the derived monetary values of a quote line.
type Totals struct {
	Subtotal float64
	IVA      float64
	Total    float64
}

// Compute derives subtotal, IVA and total from quantity and unit price.
// All three values are rounded to 2 decimals so stored records match what a
// relational money column would hold; rounding is applied uniformly in both
// storage modes. Pure, safe to call on every keystroke of a live form.
func Compute(quantity, unitPrice float64) Totals {
	subtotal := quantity * unitPrice
	return Totals{
		Subtotal: round2(subtotal),
		IVA:      round2(subtotal * TaxRate),
		Total:    round2(subtotal * (1 + TaxRate)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
