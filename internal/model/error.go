package model

import (
	"errors"
	"fmt"
)

var ErrorMessageNotFound = errors.New("email not found")
var ErrorSourceNotFound = errors.New("source not found")

// ValidationError rejects a malformed edit field before anything is written.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be a text string", e.Field)
}
