// Package password implements the password policy used by sign-up and
// password-change forms.
//
// A valid password is at least eight characters long and contains at least
// one ASCII digit, one lowercase and one uppercase ASCII letter, and one of
// the symbols ! + @ # $ % ^ & *. Order and position do not matter.
//
//	password.Validate("Abcdefg1!") // true
//	password.Validate("abc")       // false
//
// Check reports every failed requirement as a joined error so forms can show
// all hints at once:
//
//	if err := password.Check(input); errors.Is(err, password.ErrMissingUpper) {
//	    // ask for an uppercase letter
//	}
package password
