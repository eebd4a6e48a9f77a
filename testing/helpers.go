// Package testing provides test utilities for relish.
package testing

import (
	"bytes"
	"errors"
	"time"
)

// Article is a test type exercising naming translation, explicit tag names,
// initialisms, and null handling.
type Article struct {
	ID          string
	Title       string
	AuthorID    string
	Summary     string `json:"summary"`
	PublishedAt time.Time
	Notes       *string
}

// SampleArticle returns a populated Article fixture.
func SampleArticle() Article {
	notes := "second draft"
	return Article{
		ID:          "art-001",
		Title:       "Pickling for Beginners",
		AuthorID:    "usr-042",
		Summary:     "A short guide.",
		PublishedAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		Notes:       &notes,
	}
}

// FlushRecorder is an in-memory io.Writer that counts flushes.
type FlushRecorder struct {
	bytes.Buffer
	Flushes int
}

// Flush implements the flushable writer contract.
func (r *FlushRecorder) Flush() error {
	r.Flushes++
	return nil
}

// ErrWrite is returned by every FailWriter write.
var ErrWrite = errors.New("write failed")

// FailWriter is an io.Writer that always fails.
type FailWriter struct{}

func (FailWriter) Write(_ []byte) (int, error) {
	return 0, ErrWrite
}

// ErrRead is returned by every FailReader read.
var ErrRead = errors.New("read failed")

// FailReader is an io.Reader that always fails.
type FailReader struct{}

func (FailReader) Read(_ []byte) (int, error) {
	return 0, ErrRead
}
