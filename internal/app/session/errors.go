package session

import "fmt"

// SystemError is a persistence failure after a committed operation. It is
// logged and reported, never returned to the caller of Mutate.
type SystemError struct {
	Op  string
	Err error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("%s: persist: %v", e.Op, e.Err)
}

func (e *SystemError) Unwrap() error {
	return e.Err
}
