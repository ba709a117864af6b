package services

import (
	"regexp"
	"strings"
	"time"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// isValidEmail checks the address has the usual local@domain.tld shape.
// The provider performs the authoritative validation.
func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// digitsOnly strips everything but 0-9 from s.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// daysInMonth returns the day count of the given month, leap years included.
// month is 1-12.
func daysInMonth(month, year int) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
