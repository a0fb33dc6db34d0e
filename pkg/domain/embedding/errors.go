package embedding

import (
	"errors"
)

var (
	ErrTransport             = errors.New("embedding transport failure")
	ErrProviderNonOKResponse = errors.New("embedding provider returned non-OK response")
	ErrMalformedResponse     = errors.New("malformed embedding response")
	ErrConfiguration         = errors.New("invalid embedding configuration")
	ErrUnsupportedProvider   = errors.New("unsupported embedding provider")
)

// IsTransportFailure reports whether err means the remote capability could not
// produce a usable answer: unreachable, non-success status or undecodable payload.
func IsTransportFailure(err error) bool {
	return errors.Is(err, ErrTransport) ||
		errors.Is(err, ErrProviderNonOKResponse) ||
		errors.Is(err, ErrMalformedResponse)
}
