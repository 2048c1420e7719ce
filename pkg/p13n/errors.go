package p13n

import "fmt"

// CredentialError reports a required credential field that is absent.
// It is returned before any request is made.
type CredentialError struct {
	Field string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("missing required credential %q", e.Field)
}

// TransportError reports a failed HTTP exchange: the request never
// completed, or the platform answered with a non-2xx status.
type TransportError struct {
	Op     string
	Status int
	Detail string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		if e.Detail != "" {
			return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.Status, e.Detail)
		}
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ShapeError reports a 2xx response whose body does not match the
// documented payload shape.
type ShapeError struct {
	Op    string
	Field string
	Err   error
}

func (e *ShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed response field %q: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: malformed response field %q", e.Op, e.Field)
}

func (e *ShapeError) Unwrap() error { return e.Err }
