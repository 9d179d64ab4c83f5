package utils

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

	phoneFormatting = strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "")
	angleBrackets   = strings.NewReplacer("<", "", ">", "")
	scriptBlock     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
)

// NormalizeString trims whitespace and normalizes string input
func NormalizeString(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail normalizes email addresses (lowercase and trim)
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StripPhoneFormatting drops the spaces, dashes and parentheses people type
// into phone fields.
func StripPhoneFormatting(phone string) string {
	return phoneFormatting.Replace(strings.TrimSpace(phone))
}

// IsValidEmail checks the local@domain.tld shape only.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidPhone accepts an optional leading + followed by up to 16 digits,
// the first of which is not zero.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(StripPhoneFormatting(phone))
}

// StripMarkup removes script blocks and any remaining angle brackets so free
// text can be dropped into HTML mail bodies.
func StripMarkup(s string) string {
	s = scriptBlock.ReplaceAllString(s, "")
	return strings.TrimSpace(angleBrackets.Replace(s))
}
