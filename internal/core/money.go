package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// moneyInvalid marks an amount that failed numeric coercion when the record
// was read. Such amounts are excluded from summary totals instead of
// aborting aggregation.
const moneyInvalid int64 = -1 << 62

// Money is a monetary value in cents. Amounts and budgets are always
// non-negative when they go through validation; a negative value only
// appears as a remaining-budget figure (overspent trip) or as the invalid
// marker.
type Money struct {
	Cents int64
}

// Valid reports whether the value holds a usable number.
func (m Money) Valid() bool {
	return m.Cents != moneyInvalid
}

func (m Money) String() string {
	if !m.Valid() {
		return "n/a"
	}
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Sub returns m minus other.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

// MarshalJSON encodes the value as a plain JSON number with two decimals,
// or null when the value is invalid.
func (m Money) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return []byte("null"), nil
	}
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string. Content
// that is valid JSON but does not coerce to a non-negative amount becomes
// the invalid marker rather than an error: a single bad amount in a
// hand-edited file must not make the whole record set unreadable.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "null" {
		m.Cents = moneyInvalid
		return nil
	}
	cents, err := ParseAmountToCents(s)
	if err != nil {
		m.Cents = moneyInvalid
		return nil
	}
	m.Cents = cents
	return nil
}

// ParseAmountToCents converts a decimal string to cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// performs half-up rounding on the third decimal place. Zero is allowed;
// signs are not.
//
// Examples:
//
//	ParseAmountToCents("12.34")  -> 1234, nil
//	ParseAmountToCents("12,34")  -> 1234, nil
//	ParseAmountToCents("12.346") -> 1235, nil (rounds up)
//	ParseAmountToCents("0")      -> 0, nil
func ParseAmountToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%q: signed amounts are not allowed", s)
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("%q is not a decimal number", s)
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("%q is not a decimal number", s)
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, fmt.Errorf("%q is too large", s)
	}
	// Take the first two fractional digits, then half-up rounding on the third
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}
