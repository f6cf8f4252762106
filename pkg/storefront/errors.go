package storefront

import "fmt"

// InvalidArgumentError reports a malformed caller argument. It is returned
// before any network call is made.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Name, e.Reason)
}

// TransportError reports a failed HTTP exchange: either the underlying
// transport returned an error, or the upstream answered with a non-2xx status.
type TransportError struct {
	Operation  Operation
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s returned status %d", e.Operation, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NotFoundError reports that the upstream answered at the transport level but
// flagged the requested entity as unknown (success=false or no data).
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

// ParseError reports a response body that could not be mapped to the expected
// structure.
type ParseError struct {
	Operation Operation
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s response: %v", e.Operation, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
