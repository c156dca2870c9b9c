package sale

import "strings"

// Totals are the header amounts derived from a cart.
type Totals struct {
	Amount int64
	Cost   int64
	Profit int64
}

// Compute derives line and header totals from validated line params.
func Compute(params []LineParams) ([]Line, Totals) {
	lines := make([]Line, len(params))

	var t Totals

	for i, p := range params {
		l := Line{
			Name:      strings.TrimSpace(p.Name),
			CostPrice: p.Cost,
			SalePrice: p.Price,
			Qty:       p.Qty,
			Total:     p.Price * p.Qty,
			Cost:      p.Cost * p.Qty,
		}
		l.Profit = l.Total - l.Cost

		t.Amount += l.Total
		t.Cost += l.Cost
		lines[i] = l
	}

	t.Profit = t.Amount - t.Cost

	return lines, t
}

// Change returns what is handed back for paid against total, never negative.
func Change(paid, total int64) int64 {
	return max(0, paid-total)
}
