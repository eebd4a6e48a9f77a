package json

import (
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// FieldAttributes describes a struct field offered to exclusion strategies.
type FieldAttributes struct {
	// Declaring is the struct type the field belongs to.
	Declaring reflect.Type

	// Name is the declared Go field name.
	Name string

	// Type is the field's type.
	Type reflect.Type

	// Tag is the field's full struct tag.
	Tag reflect.StructTag
}

// ExclusionStrategy decides whether fields or whole types stay out of
// encoding and decoding. Strategies run in registration order; the first to
// skip wins. A skipped field disappears from output and input alike. A
// skipped class encodes as null and decodes by discarding the value; struct
// fields of a skipped class disappear entirely.
type ExclusionStrategy interface {
	// SkipField reports whether the field should be excluded.
	SkipField(attrs FieldAttributes) bool

	// SkipClass reports whether every occurrence of t should be excluded.
	SkipClass(t reflect.Type) bool
}

// exclusionExtension applies strategies at descriptor and type resolution
// time.
type exclusionExtension struct {
	jsoniter.DummyExtension
	strategies []ExclusionStrategy
}

func (x *exclusionExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	declaring := desc.Type.Type1()
	for _, binding := range desc.Fields {
		attrs := FieldAttributes{
			Declaring: declaring,
			Name:      binding.Field.Name(),
			Type:      binding.Field.Type().Type1(),
			Tag:       binding.Field.Tag(),
		}
		if x.skipField(attrs) || x.skipClass(attrs.Type) {
			binding.FromNames = []string{}
			binding.ToNames = []string{}
		}
	}
}

func (x *exclusionExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if x.skipClass(typ.Type1()) {
		return nullEncoder{}
	}
	return nil
}

func (x *exclusionExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if x.skipClass(typ.Type1()) {
		return discardDecoder{}
	}
	return nil
}

func (x *exclusionExtension) skipField(attrs FieldAttributes) bool {
	for _, s := range x.strategies {
		if s.SkipField(attrs) {
			return true
		}
	}
	return false
}

func (x *exclusionExtension) skipClass(t reflect.Type) bool {
	for _, s := range x.strategies {
		if s.SkipClass(t) {
			return true
		}
	}
	return false
}

// nullEncoder writes null for every value of a skipped class.
type nullEncoder struct{}

func (nullEncoder) IsEmpty(_ unsafe.Pointer) bool { return true }

func (nullEncoder) Encode(_ unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteNil()
}

// discardDecoder consumes the value without storing it.
type discardDecoder struct{}

func (discardDecoder) Decode(_ unsafe.Pointer, iter *jsoniter.Iterator) {
	iter.Skip()
}
