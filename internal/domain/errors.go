package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested series doesn't exist.
	ErrNotFound = errors.New("series not found")

	// ErrInvalidID indicates the identifier is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid series id")

	// ErrNotDeleted indicates the series disappeared between lookup and delete.
	ErrNotDeleted = errors.New("series was not deleted")

	// ErrImportFileNotFound indicates the import file does not exist.
	ErrImportFileNotFound = errors.New("import file not found")
)

// ValidationError reports the first import record that failed validation
type ValidationError struct {
	Index  int
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("record #%d is invalid: %v", e.Index, e.Err)
	}

	return fmt.Sprintf("record #%d is invalid: %s", e.Index, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
