package sms

import "strings"

// NormalizePhone converts a phone number to international format using the
// configured country calling code (e.g. "+63"):
//   - a leading "+" is preserved as-is,
//   - a leading "0" is replaced with the country code,
//   - otherwise the country code is prepended directly.
// Separator characters are stripped first so providers get digits only.
func NormalizePhone(phone, countryCode string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	switch {
	case cleaned == "":
		return cleaned
	case strings.HasPrefix(cleaned, "+"):
		return cleaned
	case strings.HasPrefix(cleaned, "0"):
		return countryCode + cleaned[1:]
	default:
		return countryCode + cleaned
	}
}
