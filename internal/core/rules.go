package core

import (
	"fmt"
	"strconv"
	"strings"
)

// CanonicalID parses an itinerary/expense/packing id and returns its
// canonical decimal form. Ids must be positive integers; canonicalization
// keeps "01" and "1" from coexisting as distinct keys.
func CanonicalID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: id must not be blank", ErrInvalidID)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a whole number", ErrInvalidID, s)
	}
	if n <= 0 {
		return "", fmt.Errorf("%w: %q must be positive", ErrInvalidID, s)
	}
	return strconv.FormatInt(n, 10), nil
}

// UniqueID reports whether candidate is unused among existing keys.
func UniqueID(candidate string, existing []string) bool {
	for _, id := range existing {
		if id == candidate {
			return false
		}
	}
	return true
}

// ParseQuantity parses a positive whole-number quantity for packing items.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrBadQuantity, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrBadQuantity, s)
	}
	return n, nil
}
