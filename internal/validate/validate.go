package validate

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reID  = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reHex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	reURL = regexp.MustCompile(`^https?://\S+$`)
)

// ID validates a resource identifier (store/billboard/category/... ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Required reports whether a free-text field is present after trimming.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// HexColor validates #rgb or #rrggbb.
func HexColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reHex.MatchString(s)
}

// URL accepts http(s) URLs; uploads live elsewhere, we only store the link.
func URL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2048 {
		return "", false
	}
	return s, reURL.MatchString(s)
}

// Price requires a strictly positive amount. A zero value is treated as
// missing, matching the falsy check the dashboard clients rely on.
func Price(d decimal.Decimal) bool {
	return d.IsPositive()
}
