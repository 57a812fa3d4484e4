package shared

import "errors"

var (
	ErrUnknownDeveloper = errors.New("developer does not exist")
	ErrAppExists        = errors.New("app already exists")
	ErrDeveloperExists  = errors.New("developer already exists")
	ErrInvalidApp       = errors.New("app violates a table constraint")
)
