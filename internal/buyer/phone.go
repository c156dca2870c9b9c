package buyer

import (
	"regexp"
	"strings"
)

var e164 = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

// NormalizePhone turns local notations into +E.164. A leading 0 is replaced by
// countryCode; bare numbers starting with countryCode get a plus. Empty input stays empty.
func NormalizePhone(raw, countryCode string) (string, bool) {
	p := phoneSeparators.Replace(strings.TrimSpace(raw))
	if p == "" {
		return "", true
	}

	switch {
	case strings.HasPrefix(p, "+"):
	case strings.HasPrefix(p, "00"):
		p = "+" + p[2:]
	case strings.HasPrefix(p, "0"):
		p = "+" + countryCode + p[1:]
	case strings.HasPrefix(p, countryCode):
		p = "+" + p
	default:
		return "", false
	}

	if !e164.MatchString(p) {
		return "", false
	}

	return p, true
}
