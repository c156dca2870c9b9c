// Package period describes inclusive calendar-date ranges used by ledger queries and reports.
package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/waserda/kasir/internal/apperr"
)

// Range is inclusive on both ends. A nil bound is unbounded on that side.
type Range struct {
	From *time.Time
	To   *time.Time
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}

	return t, nil
}

// Parse builds a Range from optional query values; empty strings leave the bound open.
func Parse(from, to string) (Range, error) {
	var r Range

	if strings.TrimSpace(from) != "" {
		t, err := ParseDay(from)
		if err != nil {
			return Range{}, apperr.Invalid("from", err.Error())
		}

		r.From = &t
	}

	if strings.TrimSpace(to) != "" {
		t, err := ParseDay(to)
		if err != nil {
			return Range{}, apperr.Invalid("to", err.Error())
		}

		r.To = &t
	}

	return r, nil
}

// Between is a closed range over two known dates.
func Between(from, to time.Time) Range {
	f, t := Day(from), Day(to)
	return Range{From: &f, To: &t}
}

func (r Range) Contains(day time.Time) bool {
	d := Day(day)
	if r.From != nil && d.Before(Day(*r.From)) {
		return false
	}

	if r.To != nil && d.After(Day(*r.To)) {
		return false
	}

	return true
}

// Args returns the bounds as nullable query arguments.
func (r Range) Args() (any, any) {
	var from, to any
	if r.From != nil {
		from = Day(*r.From)
	}

	if r.To != nil {
		to = Day(*r.To)
	}

	return from, to
}

func (r Range) String() string {
	f, t := "…", "…"
	if r.From != nil {
		f = r.From.Format(time.DateOnly)
	}

	if r.To != nil {
		t = r.To.Format(time.DateOnly)
	}

	return f + " – " + t
}
