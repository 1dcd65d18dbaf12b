// Package netx classifies transport-level failures of HTTP calls.
package netx

import (
	"context"
	"errors"
	"net"
	"net/url"
)

// IsTransportError reports whether err means the request never produced an
// HTTP response: connection refused, DNS failure, timeout, reset.
// Context cancellation by the caller is not a transport error.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
