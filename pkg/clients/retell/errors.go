package retell

import (
	"fmt"
	"net/http"
)

// UpstreamError is a non-2xx answer from the Retell API
type UpstreamError struct {
	StatusCode int
	Details    interface{}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("error from Retell API: %d %s: %v", e.StatusCode, http.StatusText(e.StatusCode), e.Details)
}

// TransportError means the Retell API could not be reached or its response could not be read
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error calling Retell API: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
