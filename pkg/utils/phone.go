package utils

import "strings"

// DigitsOnly strips every character that is not an ASCII digit
func DigitsOnly(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone approximates E.164 for North American numbers: a bare 10-digit
// number gets country code 1, and the result is prefixed with '+'.
// It returns "" when the input has no digits.
func NormalizePhone(phone string) string {
	digits := DigitsOnly(phone)
	if digits == "" {
		return ""
	}

	if len(digits) == 10 && !strings.HasPrefix(digits, "1") {
		digits = "1" + digits
	}

	return "+" + digits
}
