package dbf

import "fmt"

// MalformedSourceError reports a file that cannot be read as a dBase table at all.
type MalformedSourceError struct {
	File string
	Err  error
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed source %s: %s", e.File, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}
