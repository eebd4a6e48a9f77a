// Package otel provides OpenTelemetry instrumentation for converter
// operations. Metrics are disabled by default; enable them explicitly:
//
//	instrumented, err := otel.Wrap(converter, otel.WithMetricsEnabled(true))
package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// defaultMeterName identifies this instrumentation scope.
const defaultMeterName = "github.com/zoobzio/relish/otel"

// options holds instrumentation configuration.
type options struct {
	meter         metric.Meter
	meterName     string
	enableMetrics bool
}

// defaultOptions returns options with instrumentation disabled.
func defaultOptions() *options {
	return &options{
		meterName:     defaultMeterName,
		enableMetrics: false,
	}
}

// resolveMeter returns the configured meter, falling back to the global
// meter provider.
func (o *options) resolveMeter() metric.Meter {
	if o.meter != nil {
		return o.meter
	}
	return otel.Meter(o.meterName)
}

// Option configures instrumentation.
type Option func(*options)

// WithMeter sets a custom meter. When unset, the global meter provider
// supplies one under the package meter name.
func WithMeter(m metric.Meter) Option {
	return func(o *options) {
		o.meter = m
	}
}

// WithMeterName overrides the meter name used with the global provider.
func WithMeterName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.meterName = name
		}
	}
}

// WithMetricsEnabled toggles metric collection.
func WithMetricsEnabled(enabled bool) Option {
	return func(o *options) {
		o.enableMetrics = enabled
	}
}
