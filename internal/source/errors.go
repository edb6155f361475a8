package source

import "fmt"

// FetchError indicates the hiscores page could not be fetched for a
// non-transient reason (bad URL, client error status). Transient
// failures are retried and, once exhausted, reported as an empty
// snapshot instead.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// transientError marks a failure worth retrying: network errors,
// timeouts and server-side statuses.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }

func (e *transientError) Unwrap() error { return e.err }
