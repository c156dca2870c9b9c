package report

import (
	"slices"
	"time"

	"github.com/waserda/kasir/internal/period"
)

// Rollup groups sale headers by calendar day, ascending. Days without sales are absent.
func Rollup(headers []Header) []DailySales {
	byDay := make(map[time.Time]*DailySales)

	for _, h := range headers {
		day := period.Day(h.Date)

		d, ok := byDay[day]
		if !ok {
			d = &DailySales{Day: day}
			byDay[day] = d
		}

		d.TransactionCount++
		d.TotalSales += h.Amount
		d.TotalCost += h.Cost
		d.TotalProfit += h.Profit
	}

	days := make([]DailySales, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}

	slices.SortFunc(days, func(a, b DailySales) int { return a.Day.Compare(b.Day) })

	return days
}

// Total sums a rollup into a single row; Day is left zero.
func Total(days []DailySales) DailySales {
	var t DailySales

	for _, d := range days {
		t.TransactionCount += d.TransactionCount
		t.TotalSales += d.TotalSales
		t.TotalCost += d.TotalCost
		t.TotalProfit += d.TotalProfit
	}

	return t
}
