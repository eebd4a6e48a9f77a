package relish

import (
	"context"
	"io"
	"net/http"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// Converter is a JSON message-body converter. It decides eligibility for
// (type, media type) pairs, decodes request bodies, and encodes response
// bodies with an explicit UTF-8 charset.
//
// A Converter is safe for concurrent use once constructed. The codec it
// holds is treated as immutable; SetCodec replaces it wholesale.
type Converter struct {
	codec  Codec
	logger *zap.Logger
}

// Compile-time interface checks
var (
	_ Reader   = (*Converter)(nil)
	_ Writer   = (*Converter)(nil)
	_ Provider = (*Converter)(nil)
)

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithLogger sets the logger for converter diagnostics.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) ConverterOption {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConverter creates a Converter backed by codec.
func NewConverter(codec Codec, opts ...ConverterOption) (*Converter, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}

	c := &Converter{
		codec:  codec,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	emitConverterCreated(context.Background(), codec.ContentType())
	c.logger.Debug("converter created", zap.String("content_type", codec.ContentType()))
	return c, nil
}

// MediaTypes returns the media types the converter declares support for.
func (c *Converter) MediaTypes() []string {
	return []string{MediaTypeJSON, MediaTypeTextJSON}
}

// CanRead reports whether the converter will decode the given pair. A pair
// is eligible when the media type is JSON-shaped and the type is not in the
// excluded set; the check is symmetric with CanWrite.
func (c *Converter) CanRead(t reflect.Type, mediaType string) bool {
	return isJSONMediaType(mediaType) && !isExcludedType(t)
}

// CanWrite reports whether the converter will encode the given pair.
func (c *Converter) CanWrite(t reflect.Type, mediaType string) bool {
	return isJSONMediaType(mediaType) && !isExcludedType(t)
}

// Size always returns SizeUnknown: the encoded length is not known until
// marshal time.
func (c *Converter) Size(_ any, _ string) int64 {
	return SizeUnknown
}

// SetCodec replaces the codec wholesale. The converter performs no internal
// synchronization: callers must establish a happens-before relationship
// between SetCodec and subsequent Read/Write calls, typically by swapping
// only during startup or a quiesced reload.
func (c *Converter) SetCodec(codec Codec) error {
	if codec == nil {
		return ErrNilCodec
	}
	c.codec = codec
	c.logger.Info("codec replaced", zap.String("content_type", codec.ContentType()))
	return nil
}

// Read consumes r to exhaustion, then decodes the payload into v via the
// codec. The stream is never closed. Callers are expected to have accepted
// the pair through CanRead; Read itself does not re-check eligibility.
func (c *Converter) Read(r io.Reader, v any, mediaType string, _ http.Header) error {
	start := time.Now()
	mt := effectiveMediaType(mediaType)
	emitReadStart(context.Background(), mt, typeName(v))

	var size int
	var retErr error
	defer func() {
		emitReadComplete(context.Background(), mt, typeName(v), size, time.Since(start), retErr)
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		retErr = newTransportError("read", err)
		return retErr
	}
	size = len(data)

	if err := c.codec.Unmarshal(data, v); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return retErr
	}
	return nil
}

// Write encodes v and writes the UTF-8 bytes to w. When header is non-nil,
// the Content-Type entry is set to the media type with an explicit UTF-8
// charset before any bytes reach the stream. An empty media type falls back
// to application/json. The stream is flushed on success but never closed.
func (c *Converter) Write(w io.Writer, v any, mediaType string, header http.Header) error {
	start := time.Now()
	mt := effectiveMediaType(mediaType)
	emitWriteStart(context.Background(), mt, typeName(v))

	var size int
	var retErr error
	defer func() {
		emitWriteComplete(context.Background(), mt, typeName(v), size, time.Since(start), retErr)
	}()

	if header != nil {
		header.Set("Content-Type", mt+charsetSuffix)
	}

	data, err := c.codec.Marshal(v)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return retErr
	}
	size = len(data)

	if _, err := w.Write(data); err != nil {
		retErr = newTransportError("write", err)
		return retErr
	}
	if err := flush(w); err != nil {
		retErr = newTransportError("flush", err)
		return retErr
	}
	return nil
}

// effectiveMediaType substitutes the primary JSON media type when the
// framework supplied none.
func effectiveMediaType(mediaType string) string {
	if mediaType == "" {
		return MediaTypeJSON
	}
	return mediaType
}

// typeName names v's dynamic type for signals and logs.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// flush pushes buffered bytes down the stream when the writer supports it.
// Errors from flush are transport errors like any other stream failure.
func flush(w io.Writer) error {
	switch f := w.(type) {
	case interface{ Flush() error }:
		return f.Flush()
	case http.Flusher:
		f.Flush()
	}
	return nil
}
