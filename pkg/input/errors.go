package input

import "errors"

var (
	ErrNotANumber = errors.New("not a number")
	ErrEmptyLine  = errors.New("line has no digits")
)
