package password

import "errors"

var (
	ErrTooShort      = errors.New("password: must be at least 8 characters long")
	ErrMissingDigit  = errors.New("password: must contain at least one digit")
	ErrMissingSymbol = errors.New("password: must contain at least one of ! + @ # $ % ^ & *")
	ErrMissingLower  = errors.New("password: must contain at least one lowercase letter")
	ErrMissingUpper  = errors.New("password: must contain at least one uppercase letter")
	ErrLineBreak     = errors.New("password: must not contain line breaks")
)
