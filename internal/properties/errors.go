package properties

import "fmt"

// Operations reported by IOError.
const (
	OpCreate = "create"
	OpRead   = "read"
	OpParse  = "parse"
	OpWrite  = "write"
)

// IOError reports a failure to create, read, parse or write the settings file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("settings file %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
