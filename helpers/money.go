package helpers

import "github.com/shopspring/decimal"

// LineTotal is quantity × unit price rounded to 2 decimals. Each line is rounded
// on its own before any summation; totals must never be computed as
// round(sum(qty*price)).
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// SumTotals adds already-rounded line totals and rounds the result to 2 decimals.
func SumTotals(totals []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum.Round(2)
}
