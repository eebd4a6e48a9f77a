// Package relish provides HTTP message-body conversion for JSON payloads.
//
// The package offers a Converter that plugs into HTTP request-processing
// frameworks: it decides per message whether a Go type and negotiated media
// type pair should be handled as JSON, and performs the encode/decode with
// correct charset and Content-Type propagation. The JSON engine itself is
// pluggable through the Codec interface; the relish/json subpackage provides
// a configurable implementation.
//
// # Roles
//
// Conversion is split into two capability roles, mirroring the read and
// write sides of an HTTP exchange:
//
//   - Reader: decodes a request body stream into a caller-supplied value
//   - Writer: encodes a value onto a response body stream
//
// A Converter implements both. The Can* predicates are pure: frameworks call
// them during provider selection, then invoke Read or Write only after the
// predicate accepted the pair.
//
// # Eligibility
//
// A (type, media type) pair is eligible when the media type is JSON-shaped
// (subtype "json" or a "+json" suffix, case-insensitive; an absent media
// type counts as JSON) and the type is not in the excluded set. The excluded
// set covers values that represent raw streams or response plumbing rather
// than data: io.Reader, io.Writer, []byte, []rune, Streamer, *http.Response,
// and http.ResponseWriter. Both exact matches and assignable types are
// rejected, so *bytes.Buffer is excluded via io.Reader even though it never
// appears in the table itself.
//
// # Basic Usage
//
//	codec, _ := json.New(
//	    json.WithSerializeNulls(false),
//	    json.WithDateFormat(time.RFC1123),
//	)
//	conv, _ := relish.NewConverter(codec, relish.WithLogger(logger))
//
//	// Response path
//	if conv.CanWrite(reflect.TypeOf(article), accept) {
//	    _ = conv.Write(w, article, accept, w.Header())
//	}
//
//	// Request path
//	var in Article
//	if conv.CanRead(reflect.TypeOf(in), contentType) {
//	    _ = conv.Read(r.Body, &in, contentType, r.Header)
//	}
//
// # Registry
//
// Converters register process-wide by media type so framework glue can look
// them up per request:
//
//	relish.Register(conv)
//	if wr, ok := relish.WriterFor("application/json"); ok { ... }
//
// # Concurrency
//
// Read and Write execute synchronously on the caller's goroutine and carry
// no cancellation hooks; stream lifetime belongs to the caller. A Converter
// is safe for concurrent use once constructed. SetCodec replaces the codec
// wholesale and requires the caller to establish a happens-before edge with
// in-flight traffic.
package relish

import (
	"io"
	"net/http"
	"reflect"
)

// SizeUnknown is returned by Size to indicate the byte length of a payload
// cannot be determined before encoding. Frameworks fall back to chunked
// transfer or buffering when they see it.
const SizeUnknown int64 = -1

// Reader decodes message bodies into caller-supplied values.
type Reader interface {
	// CanRead reports whether this reader handles the given type and media
	// type pair. A nil type constrains the check to the media type alone.
	CanRead(t reflect.Type, mediaType string) bool

	// Read consumes r to exhaustion and decodes the payload into v, which
	// must be a pointer. The stream is never closed. The header is the
	// read-only view of the message headers; implementations may consult
	// it but must not mutate it.
	Read(r io.Reader, v any, mediaType string, header http.Header) error
}

// Writer encodes values onto message body streams.
type Writer interface {
	// CanWrite reports whether this writer handles the given type and media
	// type pair. A nil type constrains the check to the media type alone.
	CanWrite(t reflect.Type, mediaType string) bool

	// Write encodes v and writes it to w, setting the Content-Type entry in
	// header when header is non-nil. The stream is flushed but never closed.
	Write(w io.Writer, v any, mediaType string, header http.Header) error

	// Size returns the encoded byte length of v when it can be known before
	// encoding, or SizeUnknown.
	Size(v any, mediaType string) int64
}

// Provider combines both conversion roles with the media types it serves.
// Values implementing Provider can be registered process-wide via Register.
type Provider interface {
	Reader
	Writer

	// MediaTypes returns the media types this provider declares support for.
	MediaTypes() []string
}

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Streamer is implemented by values that write their own representation
// directly to an output stream. Such values are response plumbing, not data,
// and are never eligible for body conversion.
type Streamer interface {
	// Stream writes the value's representation to w.
	Stream(w io.Writer) error
}
