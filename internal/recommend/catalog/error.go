package catalog

import "fmt"

// LoadError reports an unreadable or malformed catalog/rule source. Row is
// the 1-based data row (header excluded), 0 when the failure is not
// row-specific.
type LoadError struct {
	Source string
	Row    int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("load %s: row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
