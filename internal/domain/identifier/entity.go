// Package identifier issues the structured login IDs employees sign in
// with: org code, two initials each from first and last name, joining
// year, and a four-digit serial unique within that year.
package identifier

import (
	"fmt"
	"strings"
)

// Counter tracks the last serial handed out for a joining year.
type Counter struct {
	Year          int
	CurrentSerial int
}

// ValidateNames reports whether both name parts can contribute the two
// characters the login ID needs. Callers check this before consuming a
// serial so short names never burn one.
func ValidateNames(firstName, lastName string) error {
	if len([]rune(strings.TrimSpace(firstName))) < 2 || len([]rune(strings.TrimSpace(lastName))) < 2 {
		return ErrNameTooShort
	}
	return nil
}

// BuildLoginID assembles a login ID such as DFJODO20220001.
func BuildLoginID(orgCode, firstName, lastName string, year, serial int) (string, error) {
	if err := ValidateNames(firstName, lastName); err != nil {
		return "", err
	}

	first := []rune(strings.TrimSpace(firstName))
	last := []rune(strings.TrimSpace(lastName))

	return fmt.Sprintf("%s%s%s%04d%04d",
		strings.ToUpper(orgCode),
		strings.ToUpper(string(first[:2])),
		strings.ToUpper(string(last[:2])),
		year,
		serial,
	), nil
}
