package otel

import (
	"context"
	"errors"
	"io"
	"net/http"
	"reflect"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/zoobzio/relish"
)

// ErrNilConverter indicates a wrap attempt around a nil converter.
var ErrNilConverter = errors.New("nil converter")

// InstrumentedConverter wraps a Converter with OpenTelemetry metrics.
// Eligibility checks pass through unrecorded; Read and Write record an
// operation count, a duration, and an error count on failure.
type InstrumentedConverter struct {
	converter *relish.Converter
	metrics   *Metrics
}

var (
	_ relish.Reader   = (*InstrumentedConverter)(nil)
	_ relish.Writer   = (*InstrumentedConverter)(nil)
	_ relish.Provider = (*InstrumentedConverter)(nil)
)

// Wrap instruments a converter. With metrics disabled (the default) the
// wrapper is a plain passthrough.
func Wrap(converter *relish.Converter, opts ...Option) (*InstrumentedConverter, error) {
	if converter == nil {
		return nil, ErrNilConverter
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	ic := &InstrumentedConverter{converter: converter}
	if o.enableMetrics {
		m, err := initMetrics(o.resolveMeter())
		if err != nil {
			return nil, err
		}
		ic.metrics = m
	}
	return ic, nil
}

// Unwrap returns the underlying converter.
func (ic *InstrumentedConverter) Unwrap() *relish.Converter {
	return ic.converter
}

// MediaTypes returns the media types the underlying converter declares.
func (ic *InstrumentedConverter) MediaTypes() []string {
	return ic.converter.MediaTypes()
}

// CanRead reports whether the underlying converter reads this combination.
func (ic *InstrumentedConverter) CanRead(t reflect.Type, mediaType string) bool {
	return ic.converter.CanRead(t, mediaType)
}

// CanWrite reports whether the underlying converter writes this combination.
func (ic *InstrumentedConverter) CanWrite(t reflect.Type, mediaType string) bool {
	return ic.converter.CanWrite(t, mediaType)
}

// Size reports the underlying converter's size estimate.
func (ic *InstrumentedConverter) Size(v any, mediaType string) int64 {
	return ic.converter.Size(v, mediaType)
}

// Read delegates to the underlying converter and records the operation.
func (ic *InstrumentedConverter) Read(r io.Reader, v any, mediaType string, header http.Header) error {
	start := time.Now()
	err := ic.converter.Read(r, v, mediaType, header)
	ic.recordOperation("read", mediaType, start, err)
	return err
}

// Write delegates to the underlying converter and records the operation.
func (ic *InstrumentedConverter) Write(w io.Writer, v any, mediaType string, header http.Header) error {
	start := time.Now()
	err := ic.converter.Write(w, v, mediaType, header)
	ic.recordOperation("write", mediaType, start, err)
	return err
}

// recordOperation records instruments for one operation. Conversion is
// synchronous and carries no context, so metrics record against the
// background context.
func (ic *InstrumentedConverter) recordOperation(op, mediaType string, start time.Time, err error) {
	if ic.metrics == nil {
		return
	}

	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("media_type", mediaType),
	)

	ic.metrics.OperationCount.Add(ctx, 1, attrs)
	ic.metrics.OperationLatency.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		ic.metrics.ErrorCount.Add(ctx, 1, attrs)
	}
}
