package store

import "fmt"

// PersistError wraps any failure in the persistence layer. The cycle
// treats these as fatal: no partial reconciliation result is trusted.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
