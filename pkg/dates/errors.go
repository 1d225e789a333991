package dates

import "errors"

var ErrInvalidDate = errors.New("dates: invalid calendar date, expected YYYY-MM-DD")
