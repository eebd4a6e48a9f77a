package json

import (
	"fmt"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// Adapter provides custom encoding for a single target type, replacing the
// engine's reflection for that type wherever it occurs.
type Adapter interface {
	// Encode renders v, guaranteed to be of the adapter's target type, as a
	// raw JSON fragment.
	Encode(v any) ([]byte, error)

	// Decode parses a raw JSON fragment into a value of the target type.
	// The fragment is never the null literal; null bypasses the adapter and
	// leaves the destination at its zero value.
	Decode(data []byte) (any, error)
}

// adapterExtension resolves encoders and decoders for adapter-bound types.
type adapterExtension struct {
	jsoniter.DummyExtension
	adapters map[reflect.Type]Adapter
}

func newAdapterExtension(regs []adapterRegistration) *adapterExtension {
	adapters := make(map[reflect.Type]Adapter, len(regs))
	for _, reg := range regs {
		adapters[reg.target] = reg.adapter
	}
	return &adapterExtension{adapters: adapters}
}

func (x *adapterExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if adapter, ok := x.adapters[typ.Type1()]; ok {
		return &adapterEncoder{valType: typ, adapter: adapter}
	}
	return nil
}

func (x *adapterExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if adapter, ok := x.adapters[typ.Type1()]; ok {
		return &adapterDecoder{valType: typ, adapter: adapter}
	}
	return nil
}

// adapterEncoder splices the adapter's output into the stream as a raw
// fragment. Nil values of nullable target types encode as null without
// consulting the adapter.
type adapterEncoder struct {
	valType reflect2.Type
	adapter Adapter
}

// IsEmpty reports the underlying value's own emptiness (nil nullables, zero
// scalars, length-zero collections), never the adapter's output. Struct
// values are never empty, matching the engine's native omitempty judgment.
func (e *adapterEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	if e.valType.IsNullable() && e.valType.UnsafeIsNil(ptr) {
		return true
	}
	rv := reflect.ValueOf(e.valType.UnsafeIndirect(ptr))
	switch rv.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	default:
		return false
	}
}

func (e *adapterEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	if e.valType.IsNullable() && e.valType.UnsafeIsNil(ptr) {
		stream.WriteNil()
		return
	}
	data, err := e.adapter.Encode(e.valType.UnsafeIndirect(ptr))
	if err != nil {
		stream.Error = fmt.Errorf("adapter encode %s: %w", e.valType, err)
		return
	}
	stream.Write(data)
}

// adapterDecoder hands the raw fragment to the adapter and stores the
// decoded value, rejecting values of the wrong dynamic type.
type adapterDecoder struct {
	valType reflect2.Type
	adapter Adapter
}

func (d *adapterDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		return
	}
	data := iter.SkipAndReturnBytes()
	v, err := d.adapter.Decode(data)
	if err != nil {
		iter.ReportError("adapterDecoder", err.Error())
		return
	}
	if v == nil {
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != d.valType.Type1() {
		iter.ReportError("adapterDecoder",
			fmt.Sprintf("adapter for %s returned %T", d.valType, v))
		return
	}
	reflect.NewAt(d.valType.Type1(), ptr).Elem().Set(rv)
}
