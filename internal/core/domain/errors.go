package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoPendingFiles indicates upload was requested with an empty batch.
	ErrNoPendingFiles = errors.New("no files selected")

	// ErrNoBaseURL indicates the remote service address is not configured.
	ErrNoBaseURL = errors.New("remote service URL not configured")

	// ErrNoDocuments indicates an operation requires at least one
	// uploaded document.
	ErrNoDocuments = errors.New("no documents available")
)

// ValidationError indicates input was rejected client-side before any
// request was made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Reason)
}

// TransportError indicates the remote service could not be reached or
// its response could not be read. The underlying cause is preserved.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError indicates the remote service answered but reported a
// failure: a non-2xx status, or a response body carrying an error field.
type RemoteError struct {
	Op         string
	StatusCode int
	Reason     string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: remote error %d: %s", e.Op, e.StatusCode, e.Reason)
}

// IsValidation checks if the error is a client-side validation rejection.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// IsTransport checks if the error indicates the service was unreachable.
func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// IsRemote checks if the error is a failure reported by the service.
func IsRemote(err error) bool {
	var rErr *RemoteError
	return errors.As(err, &rErr)
}

// FailureReason extracts a human-readable reason from any error in the
// taxonomy, falling back to the error's own message.
func FailureReason(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Reason
	}
	var rErr *RemoteError
	if errors.As(err, &rErr) {
		return rErr.Reason
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return fmt.Sprintf("service unreachable: %v", tErr.Err)
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
