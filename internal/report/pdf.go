package report

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/waserda/kasir/internal/money"
)

// RenderPDF writes a one-document A4 report of sum: profit split, daily rollup and the
// sales list.
func RenderPDF(w io.Writer, storeName string, sum *Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Laporan "+storeName, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Laporan "+storeName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, tr("Periode: "+sum.Range.String()), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Bagi Hasil", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)

	shares := []struct {
		label  string
		amount int64
	}{
		{"Total laba", sum.Share.TotalProfit},
		{fmt.Sprintf("Karyawan (%d%%)", EmployeePct), sum.Share.Employees},
		{fmt.Sprintf("Pemodal (%d%%)", InvestorPct), sum.Share.Investors},
		{fmt.Sprintf("Kas (%d%%)", CashPct), sum.Share.Cash},
	}

	for _, s := range shares {
		pdf.CellFormat(60, 7, s.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, money.Format(s.amount), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Rekap Harian", "", 1, "L", false, 0, "")

	dayCols := []float64{35, 20, 45, 45, 45}

	pdf.SetFont("Arial", "B", 10)

	for i, h := range []string{"Tanggal", "Trx", "Penjualan", "Modal", "Laba"} {
		pdf.CellFormat(dayCols[i], 8, h, "1", 0, "C", false, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)

	for _, d := range append(slices.Clone(sum.Days), sum.Totals) {
		label := d.Day.Format(time.DateOnly)
		if d.Day.IsZero() {
			label = "Total"
			pdf.SetFont("Arial", "B", 10)
		}

		pdf.CellFormat(dayCols[0], 7, label, "1", 0, "C", false, 0, "")
		pdf.CellFormat(dayCols[1], 7, fmt.Sprintf("%d", d.TransactionCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(dayCols[2], 7, money.Format(d.TotalSales), "1", 0, "R", false, 0, "")
		pdf.CellFormat(dayCols[3], 7, money.Format(d.TotalCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(dayCols[4], 7, money.Format(d.TotalProfit), "1", 1, "R", false, 0, "")
	}

	if len(sum.Sales) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Transaksi", "", 1, "L", false, 0, "")

		saleCols := []float64{28, 52, 36, 36, 38}

		pdf.SetFont("Arial", "B", 10)

		for i, h := range []string{"Tanggal", "Pembeli", "Total", "Laba", "Nota WA"} {
			pdf.CellFormat(saleCols[i], 8, h, "1", 0, "C", false, 0, "")
		}

		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)

		for _, s := range sum.Sales {
			buyer := s.BuyerName
			if buyer == "" {
				buyer = "-"
			}

			pdf.CellFormat(saleCols[0], 7, s.Date.Format(time.DateOnly), "1", 0, "C", false, 0, "")
			pdf.CellFormat(saleCols[1], 7, tr(buyer), "1", 0, "L", false, 0, "")
			pdf.CellFormat(saleCols[2], 7, money.Format(s.TotalAmount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(saleCols[3], 7, money.Format(s.TotalProfit), "1", 0, "R", false, 0, "")
			pdf.CellFormat(saleCols[4], 7, string(s.Status), "1", 1, "C", false, 0, "")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}

	return nil
}
