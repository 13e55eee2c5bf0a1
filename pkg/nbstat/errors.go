package nbstat

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not valid JSON text.
var ErrInvalidFormat = errors.New("invalid notebook JSON")

// SchemaError represents a notebook schema violation.
type SchemaError struct {
	Path   string // JSON path, e.g. "cells" or "cells[3].cell_type"
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("notebook schema error at %q: %s", e.Path, e.Reason)
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(path, reason string) *SchemaError {
	return &SchemaError{
		Path:   path,
		Reason: reason,
	}
}
