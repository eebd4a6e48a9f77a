package json

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// options collects build-time configuration for New.
type options struct {
	serializeNulls bool
	escapeHTML     bool
	dateFormat     string
	policy         NamingPolicy
	adapters       []adapterRegistration
	strategies     []ExclusionStrategy
	logger         *zap.Logger
}

// adapterRegistration pairs a target type with its adapter. Registrations
// keep their order for logging; for duplicate targets the later one wins.
type adapterRegistration struct {
	target  reflect.Type
	adapter Adapter
}

func defaultOptions() options {
	return options{
		serializeNulls: true,
		escapeHTML:     false,
		policy:         PolicyLowerCaseWithUnderscores,
		logger:         zap.NewNop(),
	}
}

// Option configures the codec build.
type Option func(*options)

// WithSerializeNulls controls whether null object members appear in output.
// Enabled by default. Null array elements are emitted either way.
func WithSerializeNulls(enabled bool) Option {
	return func(o *options) {
		o.serializeNulls = enabled
	}
}

// WithHTMLEscaping controls escaping of <, >, and & in encoded strings.
// Disabled by default.
func WithHTMLEscaping(enabled bool) Option {
	return func(o *options) {
		o.escapeHTML = enabled
	}
}

// WithDateFormat sets the time layout used to encode and decode time.Time
// values. An empty layout keeps the engine default (RFC 3339).
func WithDateFormat(layout string) Option {
	return func(o *options) {
		o.dateFormat = layout
	}
}

// WithNamingPolicy sets the field naming policy. The policy applies only to
// fields without an explicit json tag name.
func WithNamingPolicy(policy NamingPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithAdapter registers a type adapter for T. Later registrations for the
// same type win. Fields tagged omitempty are omitted on the value's own
// emptiness (nil, zero scalar, empty collection), not the adapter's output.
func WithAdapter[T any](adapter Adapter) Option {
	return WithAdapterFor(reflect.TypeFor[T](), adapter)
}

// WithAdapterFor registers a type adapter for a target type known only at
// runtime.
func WithAdapterFor(target reflect.Type, adapter Adapter) Option {
	return func(o *options) {
		o.adapters = append(o.adapters, adapterRegistration{target: target, adapter: adapter})
	}
}

// WithExclusionStrategies appends exclusion strategies. Strategies are
// consulted in registration order; the first to skip wins.
func WithExclusionStrategies(strategies ...ExclusionStrategy) Option {
	return func(o *options) {
		o.strategies = append(o.strategies, strategies...)
	}
}

// WithLogger sets the logger used during the build, including the
// per-adapter registration entries. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// validate rejects configurations that cannot produce a working codec.
func (o *options) validate() error {
	if !IsValidNamingPolicy(o.policy) {
		return newConfigError(ErrUnknownPolicy, string(o.policy))
	}
	for _, reg := range o.adapters {
		if reg.target == nil {
			return newConfigError(ErrNilTarget, "")
		}
		if reg.adapter == nil {
			return newConfigError(ErrNilAdapter, reg.target.String())
		}
	}
	for i, s := range o.strategies {
		if s == nil {
			return newConfigError(ErrNilStrategy, fmt.Sprintf("position %d", i))
		}
	}
	return nil
}
