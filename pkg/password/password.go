package password

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinLength is the minimum number of characters in a valid password.
	MinLength = 8
	// Symbols lists the special characters that satisfy the symbol requirement.
	Symbols = "!+@#$%^&*"
)

var (
	digitRegex     = regexp.MustCompile(`[0-9]`)
	symbolRegex    = regexp.MustCompile(`[!+@#$%^&*]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
)

// Validate reports whether s satisfies the password policy: at least MinLength
// characters with a digit, one of Symbols, a lowercase and an uppercase letter.
// Length counts runes, so an emoji is one character rather than two UTF-16 units.
func Validate(s string) bool {
	return Check(s) == nil
}

// Check returns nil for a valid password, otherwise an error joining every
// requirement s fails. Use errors.Is to test for a specific one.
func Check(s string) error {
	var errs []error

	if strings.ContainsAny(s, "\n\r\u2028\u2029") {
		errs = append(errs, ErrLineBreak)
	}
	if utf8.RuneCountInString(s) < MinLength {
		errs = append(errs, ErrTooShort)
	}
	if !digitRegex.MatchString(s) {
		errs = append(errs, ErrMissingDigit)
	}
	if !symbolRegex.MatchString(s) {
		errs = append(errs, ErrMissingSymbol)
	}
	if !lowercaseRegex.MatchString(s) {
		errs = append(errs, ErrMissingLower)
	}
	if !uppercaseRegex.MatchString(s) {
		errs = append(errs, ErrMissingUpper)
	}

	return errors.Join(errs...)
}

// Missing lists the requirements s fails, in policy order.
// The result is empty for a valid password.
func Missing(s string) []error {
	err := Check(s)
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
