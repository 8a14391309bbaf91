package remote

import (
	"fmt"
)

// WriteError indicates that the transport rejected a frame.
// The underlying transport error is available through errors.Unwrap.
type WriteError struct {
	Action string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s frame: %v", e.Action, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
