package jsonfile

import "fmt"

// WriteError represents a filesystem failure while persisting the
// export. It wraps the underlying OS-level diagnostic.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("jsonfile: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
