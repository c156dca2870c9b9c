// Package report derives profit sharing and daily rollups from committed sales. It is
// read-only and never changes ledger state.
package report

import (
	"errors"
	"time"

	"github.com/waserda/kasir/internal/investor"
	"github.com/waserda/kasir/internal/money"
	"github.com/waserda/kasir/internal/period"
	"github.com/waserda/kasir/internal/sale"
)

// ErrUnavailable marks a precomputed aggregate that is not installed in the database.
var ErrUnavailable = errors.New("precomputed aggregate unavailable")

// Profit split percentages. They do not sum to the total after flooring; the remainder
// stays unallocated.
const (
	EmployeePct = 30
	InvestorPct = 35
	CashPct     = 35
)

// ProfitShare splits the profit of a range between employees, investors and the cash box.
type ProfitShare struct {
	From        *time.Time
	To          *time.Time
	TotalProfit int64
	Employees   int64
	Investors   int64
	Cash        int64
}

// Split applies the fixed percentages to total with floor division.
func Split(r period.Range, total int64) ProfitShare {
	return ProfitShare{
		From:        r.From,
		To:          r.To,
		TotalProfit: total,
		Employees:   money.Percent(total, EmployeePct),
		Investors:   money.Percent(total, InvestorPct),
		Cash:        money.Percent(total, CashPct),
	}
}

// Leakage is the part of the profit lost to flooring.
func (p ProfitShare) Leakage() int64 {
	return p.TotalProfit - p.Employees - p.Investors - p.Cash
}

// DailySales is one calendar day of the rollup.
type DailySales struct {
	Day              time.Time
	TransactionCount int64
	TotalSales       int64
	TotalCost        int64
	TotalProfit      int64
}

// Header is the financial part of a sale needed for the rollup.
type Header struct {
	Date   time.Time
	Amount int64
	Cost   int64
	Profit int64
}

// InvestorSummary lists investors alongside per-year totals over all years.
type InvestorSummary struct {
	Items []*investor.Investor
	Years []investor.YearTotal
}

// Summary is everything the report page shows for one range.
type Summary struct {
	Range  period.Range
	Share  ProfitShare
	Days   []DailySales
	Sales  []*sale.Sale
	Totals DailySales
}
