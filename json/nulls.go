package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// stripNullMembers rewrites data with null object members removed at every
// depth, for structs and maps alike. Array elements stay: a null inside an
// array is data, a null member is an absent field.
func stripNullMembers(api jsoniter.API, data []byte) ([]byte, error) {
	iter := api.BorrowIterator(data)
	defer api.ReturnIterator(iter)
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	stripValue(iter, stream)

	if iter.Error != nil && iter.Error != io.EOF {
		return nil, iter.Error
	}
	if stream.Error != nil {
		return nil, stream.Error
	}

	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

func stripValue(iter *jsoniter.Iterator, stream *jsoniter.Stream) {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		stream.WriteObjectStart()
		first := true
		iter.ReadObjectCB(func(it *jsoniter.Iterator, member string) bool {
			if it.WhatIsNext() == jsoniter.NilValue {
				it.ReadNil()
				return true
			}
			if !first {
				stream.WriteMore()
			}
			first = false
			stream.WriteObjectField(member)
			stripValue(it, stream)
			return true
		})
		stream.WriteObjectEnd()
	case jsoniter.ArrayValue:
		stream.WriteArrayStart()
		first := true
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			if !first {
				stream.WriteMore()
			}
			first = false
			stripValue(it, stream)
			return true
		})
		stream.WriteArrayEnd()
	default:
		stream.WriteRaw(string(iter.SkipAndReturnBytes()))
	}
}
