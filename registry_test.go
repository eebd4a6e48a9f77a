package relish_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/relish"
)

func TestRegisterReader(t *testing.T) {
	relish.Reset()

	conv, _ := relish.NewConverter(&testCodec{})
	if err := relish.RegisterReader("application/json", conv); err != nil {
		t.Fatalf("RegisterReader() error: %v", err)
	}

	if _, ok := relish.ReaderFor("application/json"); !ok {
		t.Error("ReaderFor() should find the registered reader")
	}
	if _, ok := relish.WriterFor("application/json"); ok {
		t.Error("WriterFor() should not find a reader-only registration")
	}
}

func TestRegisterWriter(t *testing.T) {
	relish.Reset()

	conv, _ := relish.NewConverter(&testCodec{})
	if err := relish.RegisterWriter("application/json", conv); err != nil {
		t.Fatalf("RegisterWriter() error: %v", err)
	}

	if _, ok := relish.WriterFor("application/json"); !ok {
		t.Error("WriterFor() should find the registered writer")
	}
	if _, ok := relish.ReaderFor("application/json"); ok {
		t.Error("ReaderFor() should not find a writer-only registration")
	}
}

func TestRegister_InvalidMediaType(t *testing.T) {
	relish.Reset()

	conv, _ := relish.NewConverter(&testCodec{})

	tests := []struct {
		name      string
		mediaType string
	}{
		{"empty", ""},
		{"missing subtype", "application"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := relish.RegisterReader(tt.mediaType, conv); !errors.Is(err, relish.ErrInvalidMediaType) {
				t.Errorf("RegisterReader(%q) error = %v, want ErrInvalidMediaType", tt.mediaType, err)
			}
			if err := relish.RegisterWriter(tt.mediaType, conv); !errors.Is(err, relish.ErrInvalidMediaType) {
				t.Errorf("RegisterWriter(%q) error = %v, want ErrInvalidMediaType", tt.mediaType, err)
			}
		})
	}
}

func TestReaderFor_Normalizes(t *testing.T) {
	relish.Reset()

	conv, _ := relish.NewConverter(&testCodec{})
	if err := relish.RegisterReader("application/json", conv); err != nil {
		t.Fatalf("RegisterReader() error: %v", err)
	}

	if _, ok := relish.ReaderFor("Application/JSON; charset=utf-8"); !ok {
		t.Error("ReaderFor() should match after normalization")
	}
}

func TestRegister_Provider(t *testing.T) {
	relish.Reset()

	conv, _ := relish.NewConverter(&testCodec{})
	if err := relish.Register(conv); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	for _, mt := range conv.MediaTypes() {
		if _, ok := relish.ReaderFor(mt); !ok {
			t.Errorf("ReaderFor(%q) should find the provider", mt)
		}
		if _, ok := relish.WriterFor(mt); !ok {
			t.Errorf("WriterFor(%q) should find the provider", mt)
		}
	}
}

func TestRegister_Replaces(t *testing.T) {
	relish.Reset()

	first, _ := relish.NewConverter(&testCodec{})
	second, _ := relish.NewConverter(&testCodec{})

	if err := relish.Register(first); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := relish.Register(second); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	got, ok := relish.WriterFor("application/json")
	if !ok {
		t.Fatal("WriterFor() should find the provider")
	}
	if got.(*relish.Converter) != second {
		t.Error("later registration should replace the earlier one")
	}
}

func TestReset(t *testing.T) {
	conv, _ := relish.NewConverter(&testCodec{})
	if err := relish.Register(conv); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	relish.Reset()

	if _, ok := relish.ReaderFor("application/json"); ok {
		t.Error("Reset() should clear registered readers")
	}
	if _, ok := relish.WriterFor("application/json"); ok {
		t.Error("Reset() should clear registered writers")
	}
}
