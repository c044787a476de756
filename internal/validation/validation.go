package validation

import (
	"strings"
)

// Missing is substituted for any field the enrichment providers could not
// supply, and for published dates that fail NormalizeDate.
const Missing = "missing"

var genres = map[string]bool{
	"Fiction":         true,
	"Children":        true,
	"Biography":       true,
	"Science":         true,
	"Science Fiction": true,
	"Fantasy":         true,
	"Other":           true,
}

// IsISBN13 reports whether s is exactly 13 ASCII digits.
func IsISBN13(s string) bool {
	if len(s) != 13 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsGenre reports whether s is one of the accepted genres.
func IsGenre(s string) bool {
	return genres[s]
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NormalizeDate accepts a published date that is either a bare 4-digit year
// or a 10-character yyyy-mm-dd shape. Only the digit-ness of the year and
// the hyphens at positions 4 and 7 are checked; month and day digits are
// deliberately not validated. Anything else maps to Missing.
func NormalizeDate(s string) string {
	switch len(s) {
	case 4:
		if allDigits(s) {
			return s
		}
	case 10:
		if allDigits(s[:4]) && s[4] == '-' && s[7] == '-' {
			return s
		}
	}
	return Missing
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
