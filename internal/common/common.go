// Package common holds small helpers and constants shared by the client
// packages.
package common

const (
	// AuthorizationHeader carries the bearer token on authenticated requests.
	AuthorizationHeader = "Authorization"
	// BearerPrefix precedes the raw token inside AuthorizationHeader.
	BearerPrefix = "Bearer "
	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"
)

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
