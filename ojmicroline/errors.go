package ojmicroline

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/evcc-io/evcc/api"
)

// Error kinds. Every error returned by this package wraps one of them.
var (
	ErrAuth       = errors.New("authentication failed")
	ErrConnection = errors.New("connection failed")
	ErrResults    = errors.New("unexpected results")
	ErrRequest    = errors.New("request failed")

	ErrTimeout = api.ErrTimeout
)

// Error is returned for all failures talking to the OJ Microline API
type Error struct {
	Kind    error
	Msg     string
	Details map[string]string
	Err     error
}

func newError(kind error, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// transportError classifies a failed round trip
func transportError(err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return newError(ErrConnection, "could not resolve api host", err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) && netErr.Timeout() {
		return newError(ErrConnection, "timeout occurred while connecting to the api", fmt.Errorf("%w: %w", ErrTimeout, err))
	}

	return newError(ErrConnection, "error occurred while communicating with the api", err)
}
