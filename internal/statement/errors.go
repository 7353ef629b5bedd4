package statement

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the statement header.
// It is fatal to the run: no partial export is produced.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("statement is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ParseError reports that the input could not be read as a table at all
// (unsupported extension, malformed file). Fatal to the run.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot read %s as a statement table: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
