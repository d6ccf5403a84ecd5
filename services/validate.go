package services

import (
	"fmt"
	"regexp"
	"strings"
)

// CountryCodePrefix is applied to customer numbers after validation.
const CountryCodePrefix = "+91"

var (
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	nonDigitPattern = regexp.MustCompile(`[^0-9]`)
)

// ValidatePhone reports whether phone is exactly 10 decimal digits with no
// formatting characters. This gate runs before any send or customer print
// is attempted.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// NormalizePhone strips formatting characters, checks the 10-digit rule and
// returns the number with the country-code prefix applied.
func NormalizePhone(raw string) (string, error) {
	cleaned := nonDigitPattern.ReplaceAllString(strings.TrimSpace(raw), "")
	if len(cleaned) != 10 {
		return "", fmt.Errorf("invalid phone number: %q", raw)
	}
	return CountryCodePrefix + cleaned, nil
}
