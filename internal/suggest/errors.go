package suggest

import "fmt"

// APICallError represents a failure reaching the generative provider.
// It is a pipeline-level error: no partial results are attempted.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("suggestion API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("suggestion API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError represents an unparseable or schema-violating
// response from the generative provider. Fields are never silently defaulted;
// a bad response fails the whole call.
type MalformedResponseError struct {
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed suggestion response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed suggestion response: %s", e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// InvalidInputError indicates unusable preference text, rejected before any
// external call is made.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}
