package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/waserda/kasir/internal/buyer"
	enc "github.com/waserda/kasir/internal/encoding"
	"github.com/waserda/kasir/internal/investor"
)

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(h), `"`))
}

// sniffComma picks ';' or ',' by counting both over the first lines.
func sniffComma(data string) rune {
	lines := strings.SplitN(data, "\n", 11)
	if len(lines) > 10 {
		lines = lines[:10]
	}

	var semi, comma int
	for _, l := range lines {
		semi += strings.Count(l, ";")
		comma += strings.Count(l, ",")
	}

	if semi > comma {
		return ';'
	}

	return ','
}

// readTable decodes r and returns the header-matched columns and the data rows after it.
// The header is the first row that satisfies the profile.
func readTable(r io.Reader, p Profile) (map[string]int, [][]string, int, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read file: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = sniffComma(string(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read csv: %w", err)
	}

	for i, row := range rows {
		if cols, ok := p.match(row); ok {
			return cols, rows[i+1:], i + 1, nil
		}
	}

	return nil, nil, 0, fmt.Errorf("no %s header found", p.Kind)
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// parseOptIn reads yes/no style flags. Missing values default to true.
func parseOptIn(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "1", "y", "ya", "yes", "true":
		return true, nil
	case "0", "n", "tidak", "no", "false":
		return false, nil
	}

	return false, fmt.Errorf("invalid opt-in value %q", s)
}

// ParseBuyers reads a buyers export into create params.
func ParseBuyers(r io.Reader) ([]buyer.CreateParams, error) {
	cols, rows, headerRow, err := readTable(r, buyerProfile)
	if err != nil {
		return nil, err
	}

	params := []buyer.CreateParams{}

	for i, row := range rows {
		if blank(row) {
			continue
		}

		rowNum := headerRow + i + 1

		optIn, err := parseOptIn(cell(row, cols, "opt_in"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		params = append(params, buyer.CreateParams{
			Name:    cell(row, cols, "name"),
			Phone:   cell(row, cols, "phone"),
			WAOptIn: optIn,
			Note:    cell(row, cols, "note"),
		})
	}

	return params, nil
}

// ParseInvestors reads an investors export into create params.
func ParseInvestors(r io.Reader) ([]investor.CreateParams, error) {
	cols, rows, headerRow, err := readTable(r, investorProfile)
	if err != nil {
		return nil, err
	}

	params := []investor.CreateParams{}

	for i, row := range rows {
		if blank(row) {
			continue
		}

		rowNum := headerRow + i + 1

		year, err := strconv.Atoi(cell(row, cols, "year"))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid year %q", rowNum, cell(row, cols, "year"))
		}

		amount, err := parseAmount(cell(row, cols, "amount"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		params = append(params, investor.CreateParams{
			Name:   cell(row, cols, "name"),
			Year:   year,
			Amount: amount,
			Note:   cell(row, cols, "note"),
		})
	}

	return params, nil
}
