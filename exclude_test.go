package relish

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestIsExcludedType(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"nil type", nil, false},
		{"byte slice", reflect.TypeFor[[]byte](), true},
		{"rune slice", reflect.TypeFor[[]rune](), true},
		{"reader interface", reflect.TypeFor[io.Reader](), true},
		{"writer interface", reflect.TypeFor[io.Writer](), true},
		{"streamer interface", reflect.TypeFor[Streamer](), true},
		{"response pointer", reflect.TypeFor[*http.Response](), true},
		{"response writer", reflect.TypeFor[http.ResponseWriter](), true},
		{"buffer satisfies reader", reflect.TypeFor[*bytes.Buffer](), true},
		{"file satisfies reader", reflect.TypeFor[*os.File](), true},
		{"strings reader satisfies reader", reflect.TypeFor[*strings.Reader](), true},
		{"response value", reflect.TypeFor[http.Response](), false},
		{"plain struct", reflect.TypeFor[struct{ Name string }](), false},
		{"string", reflect.TypeFor[string](), false},
		{"int slice", reflect.TypeFor[[]int](), false},
		{"map", reflect.TypeFor[map[string]any](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isExcludedType(tt.typ); got != tt.want {
				t.Errorf("isExcludedType(%v) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}
