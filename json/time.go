package json

import (
	"reflect"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

var timeType = reflect.TypeFor[time.Time]()

// timeExtension swaps the engine's RFC 3339 handling of time.Time for a
// caller-chosen layout. Adapters registered for time.Time outrank it.
type timeExtension struct {
	jsoniter.DummyExtension
	layout string
}

func (x *timeExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() == timeType {
		return &timeEncoder{layout: x.layout}
	}
	return nil
}

func (x *timeExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() == timeType {
		return &timeDecoder{layout: x.layout}
	}
	return nil
}

type timeEncoder struct {
	layout string
}

func (e *timeEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return (*time.Time)(ptr).IsZero()
}

func (e *timeEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString((*time.Time)(ptr).Format(e.layout))
}

type timeDecoder struct {
	layout string
}

func (d *timeDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
	case jsoniter.StringValue:
		t, err := time.Parse(d.layout, iter.ReadString())
		if err != nil {
			iter.ReportError("timeDecoder", err.Error())
			return
		}
		*(*time.Time)(ptr) = t
	default:
		iter.ReportError("timeDecoder", "expected a string-encoded time")
	}
}
