package upstream

import "errors"

// Transport-level failures (DNS, timeout, connection refused) are returned
// wrapped and match neither sentinel.
var (
	// ErrNotFound marks a non-200 response from a provider.
	ErrNotFound = errors.New("upstream resource not found")

	// ErrMalformed marks a 200 response whose body cannot be decoded or is
	// missing required fields.
	ErrMalformed = errors.New("malformed upstream payload")
)
