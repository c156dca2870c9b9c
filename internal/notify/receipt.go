package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/waserda/kasir/internal/money"
	"github.com/waserda/kasir/internal/sale"
)

const separator = "--------------------------------"

// Receipt renders the buyer-facing text for s. Cost prices are never included.
func Receipt(storeName string, s *sale.Sale) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s*\n", storeName)
	b.WriteString("Nota Belanja\n")
	fmt.Fprintf(&b, "Tanggal : %s\n", s.Date.Format(time.DateOnly))

	if s.BuyerName != "" {
		fmt.Fprintf(&b, "Pembeli : %s\n", s.BuyerName)
	}

	b.WriteString(separator + "\n")

	for _, l := range s.Lines {
		b.WriteString(l.Name + "\n")
		fmt.Fprintf(&b, "%d x %s = %s\n", l.Qty, money.Format(l.SalePrice), money.Format(l.SalePrice*l.Qty))
	}

	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Total   : *%s*\n", money.Format(s.TotalAmount))
	fmt.Fprintf(&b, "Bayar   : %s\n", money.Format(s.Paid))
	fmt.Fprintf(&b, "Kembali : %s\n", money.Format(s.Change))
	b.WriteString(separator + "\n")
	b.WriteString("Terima kasih")

	return b.String()
}

// Number turns a stored +E.164 phone into the digits-only form the channel expects.
func Number(phone string) string {
	return strings.TrimPrefix(strings.TrimSpace(phone), "+")
}
