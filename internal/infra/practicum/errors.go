package practicum

import (
	"errors"
	"fmt"
)

// Shape errors reported by ParseResponse. They are deliberately distinct so
// the poller can tell a malformed envelope from a malformed field.
var (
	ErrNotMapping    = errors.New("response must be a mapping")
	ErrHomeworksKey  = errors.New("homeworks key is missing")
	ErrHomeworksList = errors.New("homeworks must be a sequence")
)

// EndpointError reports a non-200 answer from the review API.
type EndpointError struct {
	Code int
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("endpoint unavailable: status %d", e.Code)
}

// AccessError reports a transport-level failure reaching the API
// (connection refused, timeout, DNS).
type AccessError struct {
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("no access to the API: %v", e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// DecodeError reports a body that could not be interpreted as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response did not decode as JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
