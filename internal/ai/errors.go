package ai

import "fmt"

// InitError means the AI client could not be constructed at all. It is fatal
// for the summary feature: the dashboard stays up but refreshes are disabled
// for the session.
type InitError struct {
	Provider string
	Err      error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s client: %v", e.Provider, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// TransportError means the request itself failed: network, auth, quota or an
// empty reply. It is retryable from the user's point of view.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
