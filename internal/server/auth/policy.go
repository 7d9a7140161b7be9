package auth

import (
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLength = 6
	passwordSymbols   = "@$!%*?&#"
)

// IsValidPassword reports whether password has an ASCII uppercase letter,
// an ASCII lowercase letter, a digit, one of @$!%*?&# and at least six
// characters. The rule is intentionally minimal and fixed.
func IsValidPassword(password string) bool {
	var upper, lower, digit bool
	for i := 0; i < len(password); i++ {
		switch c := password[i]; {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}

	return upper && lower && digit &&
		strings.ContainsAny(password, passwordSymbols) &&
		utf8.RuneCountInString(password) >= minPasswordLength
}
