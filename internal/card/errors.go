package card

import "fmt"

// FileAccessError reports an input that could not be read as a workbook or
// an output that could not be written.
type FileAccessError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// SchemaError reports a workbook that lacks the expected sheet or column
type SchemaError struct {
	Path   string
	Sheet  string
	Column string // empty when the sheet itself is missing
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: worksheet %q not found", e.Path, e.Sheet)
	}
	return fmt.Sprintf("%s: worksheet %q has no %q column", e.Path, e.Sheet, e.Column)
}
