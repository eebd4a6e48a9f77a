package relish

import (
	"sync"
)

var (
	registryMu sync.RWMutex
	readers    = make(map[string]Reader)
	writers    = make(map[string]Writer)
)

// RegisterReader registers a reader for the given media type. The media type
// is normalized (lowercased, parameters stripped) before use as a key; a
// later registration for the same media type replaces the earlier one.
func RegisterReader(mediaType string, r Reader) error {
	key := normalizeMediaType(mediaType)
	if key == "" {
		return ErrInvalidMediaType
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	readers[key] = r
	return nil
}

// RegisterWriter registers a writer for the given media type.
func RegisterWriter(mediaType string, w Writer) error {
	key := normalizeMediaType(mediaType)
	if key == "" {
		return ErrInvalidMediaType
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	writers[key] = w
	return nil
}

// Register registers a provider for both roles under each media type it
// declares. Registration stops at the first invalid media type.
func Register(p Provider) error {
	for _, mt := range p.MediaTypes() {
		if err := RegisterReader(mt, p); err != nil {
			return err
		}
		if err := RegisterWriter(mt, p); err != nil {
			return err
		}
	}
	return nil
}

// ReaderFor returns the reader registered for the media type, matching on
// the normalized type/subtype. Parameters in the query are ignored.
func ReaderFor(mediaType string) (Reader, bool) {
	key := normalizeMediaType(mediaType)
	if key == "" {
		return nil, false
	}

	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := readers[key]
	return r, ok
}

// WriterFor returns the writer registered for the media type.
func WriterFor(mediaType string) (Writer, bool) {
	key := normalizeMediaType(mediaType)
	if key == "" {
		return nil, false
	}

	registryMu.RLock()
	defer registryMu.RUnlock()
	w, ok := writers[key]
	return w, ok
}

// Reset clears both role registries.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	readers = make(map[string]Reader)
	writers = make(map[string]Writer)
}
