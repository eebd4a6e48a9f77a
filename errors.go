package relish

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrTransport indicates a body stream operation failed.
	ErrTransport = errors.New("transport failed")

	// ErrNilCodec indicates a converter was given a nil codec.
	ErrNilCodec = errors.New("nil codec")

	// ErrInvalidMediaType indicates a media type could not be parsed.
	ErrInvalidMediaType = errors.New("invalid media type")
)

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// TransportError represents a failure on the body stream itself.
// It wraps ErrTransport with the stream operation that failed.
type TransportError struct {
	Err   error  // Underlying sentinel error (ErrTransport)
	Op    string // Stream operation that failed (read, write, flush)
	Cause error  // Original error from the stream
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s stream: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s stream", e.Op)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}

// newTransportError creates a TransportError for stream failures.
func newTransportError(op string, cause error) error {
	return &TransportError{
		Err:   ErrTransport,
		Op:    op,
		Cause: cause,
	}
}
