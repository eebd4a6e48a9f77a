package relish

import (
	"mime"
	"strings"
)

// Media types declared by the JSON converter.
const (
	MediaTypeJSON     = "application/json"
	MediaTypeTextJSON = "text/json"
)

// charsetSuffix is appended to the Content-Type header value on every write.
const charsetSuffix = ";charset=UTF-8"

// isJSONMediaType reports whether mediaType names a JSON payload. An empty
// media type counts as JSON: absence means the framework left negotiation
// open. Matching is case-insensitive on the subtype only, accepting "json"
// and any "+json" structured-syntax suffix; parameters are ignored. An
// unparsable media type is not JSON.
func isJSONMediaType(mediaType string) bool {
	if mediaType == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	// ParseMediaType lowercases the type/subtype.
	_, subtype, ok := strings.Cut(mt, "/")
	if !ok {
		return false
	}
	return subtype == "json" || strings.HasSuffix(subtype, "+json")
}

// normalizeMediaType returns the lowercase type/subtype with parameters
// stripped, for use as a registry key. Returns "" when unparsable.
func normalizeMediaType(mediaType string) string {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return ""
	}
	if !strings.Contains(mt, "/") {
		return ""
	}
	return mt
}
