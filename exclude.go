package relish

import (
	"io"
	"net/http"
	"reflect"
)

// excludedTypes lists types that are never eligible for JSON conversion
// regardless of media type: stream sources and sinks, raw character data,
// and response plumbing. Fixed at init, never mutated.
var excludedTypes = []reflect.Type{
	reflect.TypeFor[io.Reader](),
	reflect.TypeFor[io.Writer](),
	reflect.TypeFor[[]byte](),
	reflect.TypeFor[[]rune](),
	reflect.TypeFor[Streamer](),
	reflect.TypeFor[*http.Response](),
	reflect.TypeFor[http.ResponseWriter](),
}

// isExcludedType reports whether t matches the excluded set, exactly or by
// assignability (interface satisfaction included). A nil type is not
// excluded; eligibility then rests on the media type alone.
func isExcludedType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for _, ex := range excludedTypes {
		if t == ex || t.AssignableTo(ex) {
			return true
		}
	}
	return false
}
