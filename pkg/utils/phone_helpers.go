package utils

import (
	"regexp"
)

var nonDigitRegexp = regexp.MustCompile(`\D`)

// NormalizeTurkishPhoneNumber оставляет последние 10 цифр номера (5XXXXXXXXX).
// Возвращает пустую строку, если цифр меньше 10.
func NormalizeTurkishPhoneNumber(phone string) string {
	digitsOnly := nonDigitRegexp.ReplaceAllString(phone, "")
	if len(digitsOnly) < 10 {
		return ""
	}
	return digitsOnly[len(digitsOnly)-10:]
}
