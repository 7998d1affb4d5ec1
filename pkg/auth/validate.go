package auth

import "regexp"

// maxEmailLen follows the storage column width: 64 for the local part, one
// for @, up to 255 for the domain. Stricter than RFC 5321 but matches what
// the accounts table can hold.
const maxEmailLen = 320

var (
	emailRegexp = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// Allowed password alphabet and length. The per-class requirements are
	// checked separately since RE2 has no lookahead.
	passwordRegexp = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*_-]{8,32}$`)
)

// ValidEmail reports whether s is a syntactically plausible address:
// local part, @, domain with at least one dot and a TLD of two or more
// letters. No DNS or mailbox check.
func ValidEmail(s string) bool {
	return len(s) <= maxEmailLen && emailRegexp.MatchString(s)
}

// ValidPassword reports whether s satisfies the password policy: 8-32
// characters from the allowed alphabet with at least one letter, one digit
// and one special character.
func ValidPassword(s string) bool {
	if !passwordRegexp.MatchString(s) {
		return false
	}
	var letter, digit, special bool
	for _, c := range s {
		switch {
		case 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z':
			letter = true
		case '0' <= c && c <= '9':
			digit = true
		default:
			// alphabet is already restricted, so this is one of !@#$%^&*_-
			special = true
		}
	}
	return letter && digit && special
}
