package report

import "fmt"

// FormatError means no JSON payload could be located in the response text at
// all: the model ignored the fenced-block instruction.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("no JSON payload located in response: %s", e.Reason)
}

// ParseError means a payload was located but is not syntactically valid JSON.
// Kept distinct from FormatError so callers can tell "model didn't follow
// instructions" from "model emitted malformed JSON".
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed JSON payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
