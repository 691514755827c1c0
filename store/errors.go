package store

import "errors"

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed input field.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
