// Package json provides a configurable JSON codec implementation.
//
// The codec is built once from options and is immutable afterwards:
//
//	codec, err := json.New(
//	    json.WithSerializeNulls(false),
//	    json.WithDateFormat(time.RFC1123),
//	    json.WithAdapter[Money](moneyAdapter{}),
//	    json.WithExclusionStrategies(skipInternal{}),
//	)
//
// Convention defaults: null object members are kept, HTML escaping is off,
// time values use RFC 3339, and field names translate to
// lower_case_with_underscores unless a json tag names them explicitly.
package json

import (
	"bytes"
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/zoobzio/relish"
)

// Codec is an immutable JSON codec. It is safe for concurrent use.
type Codec struct {
	api            jsoniter.API
	serializeNulls bool
}

var _ relish.Codec = (*Codec)(nil)

// New builds a Codec from opts. Overrides apply over the convention defaults
// in a fixed order: naming policy, null handling, HTML escaping, type
// adapters (each registration logged at debug), exclusion strategies, and
// finally the date format when one is set.
func New(opts ...Option) (*Codec, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	api := jsoniter.Config{
		EscapeHTML:             o.escapeHTML,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()

	// Extension precedence follows registration order: exclusion strategies
	// outrank adapters for skipped classes, adapters outrank the date
	// format, and the naming policy only touches fields nothing else claimed.
	if len(o.strategies) > 0 {
		api.RegisterExtension(&exclusionExtension{strategies: o.strategies})
	}
	if len(o.adapters) > 0 {
		for _, reg := range o.adapters {
			adapterName := fmt.Sprintf("%T", reg.adapter)
			o.logger.Debug("registering type adapter",
				zap.String("target_type", reg.target.String()),
				zap.String("adapter", adapterName),
			)
			emitAdapterRegistered(context.Background(), reg.target.String(), adapterName)
		}
		api.RegisterExtension(newAdapterExtension(o.adapters))
	}
	if o.dateFormat != "" {
		api.RegisterExtension(&timeExtension{layout: o.dateFormat})
	}
	if o.policy != PolicyIdentity {
		api.RegisterExtension(&namingExtension{policy: o.policy})
	}

	c := &Codec{
		api:            api,
		serializeNulls: o.serializeNulls,
	}

	emitCodecBuilt(context.Background(), string(o.policy), len(o.adapters), len(o.strategies))
	o.logger.Debug("json codec built",
		zap.String("naming_policy", string(o.policy)),
		zap.Bool("serialize_nulls", o.serializeNulls),
		zap.Bool("escape_html", o.escapeHTML),
		zap.String("date_format", o.dateFormat),
		zap.Int("adapter_count", len(o.adapters)),
		zap.Int("strategy_count", len(o.strategies)),
	)
	return c, nil
}

// ContentType returns the MIME type for JSON.
func (c *Codec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON. With null serialization disabled, null object
// members of structs and maps are dropped in a second pass; null array
// elements are kept either way.
func (c *Codec) Marshal(v any) ([]byte, error) {
	data, err := c.api.Marshal(v)
	if err != nil {
		return nil, err
	}
	if c.serializeNulls {
		return data, nil
	}
	return stripNullMembers(c.api, data)
}

// Unmarshal decodes JSON data into v. Empty or whitespace-only input and
// the bare null literal both leave v unchanged.
func (c *Codec) Unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return c.api.Unmarshal(data, v)
}
