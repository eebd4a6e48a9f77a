package json

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type rating struct {
	Score int
	Scale int
}

// ratingAdapter renders ratings in the compact "score/scale" string form.
type ratingAdapter struct{}

func (ratingAdapter) Encode(v any) ([]byte, error) {
	r, ok := v.(rating)
	if !ok {
		return nil, fmt.Errorf("unexpected value %T", v)
	}
	return []byte(fmt.Sprintf("%q", fmt.Sprintf("%d/%d", r.Score, r.Scale))), nil
}

func (ratingAdapter) Decode(data []byte) (any, error) {
	s := strings.Trim(string(data), `"`)
	var r rating
	if _, err := fmt.Sscanf(s, "%d/%d", &r.Score, &r.Scale); err != nil {
		return nil, fmt.Errorf("parse rating %q: %w", s, err)
	}
	return r, nil
}

// countingAdapter records how often it is consulted.
type countingAdapter struct {
	ratingAdapter
	encodes *int
	decodes *int
}

func (a countingAdapter) Encode(v any) ([]byte, error) {
	*a.encodes++
	return a.ratingAdapter.Encode(v)
}

func (a countingAdapter) Decode(data []byte) (any, error) {
	*a.decodes++
	return a.ratingAdapter.Decode(data)
}

// wrongTypeAdapter decodes to a value outside its target type.
type wrongTypeAdapter struct{}

func (wrongTypeAdapter) Encode(any) ([]byte, error) {
	return []byte(`"x"`), nil
}

func (wrongTypeAdapter) Decode([]byte) (any, error) {
	return "not a rating", nil
}

// failingAdapter fails both directions.
type failingAdapter struct{}

func (failingAdapter) Encode(any) ([]byte, error) {
	return nil, errors.New("encode refused")
}

func (failingAdapter) Decode([]byte) (any, error) {
	return nil, errors.New("decode refused")
}

// starsAdapter renders an int count as a run of stars.
type starsAdapter struct{}

func (starsAdapter) Encode(v any) ([]byte, error) {
	n, ok := v.(int)
	if !ok {
		return nil, fmt.Errorf("unexpected value %T", v)
	}
	return []byte(fmt.Sprintf("%q", strings.Repeat("*", n))), nil
}

func (starsAdapter) Decode(data []byte) (any, error) {
	return len(strings.Trim(string(data), `"`)), nil
}

type review struct {
	Title  string
	Rating rating
}

func TestAdapter_Encode(t *testing.T) {
	c, err := New(WithAdapter[rating](ratingAdapter{}))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	data, err := c.Marshal(review{Title: "brine", Rating: rating{Score: 4, Scale: 5}})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := `{"title":"brine","rating":"4/5"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestAdapter_Decode(t *testing.T) {
	c, _ := New(WithAdapter[rating](ratingAdapter{}))

	var got review
	if err := c.Unmarshal([]byte(`{"title":"brine","rating":"4/5"}`), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Rating != (rating{Score: 4, Scale: 5}) {
		t.Errorf("Rating = %+v, want {4 5}", got.Rating)
	}
}

func TestAdapter_TopLevel(t *testing.T) {
	c, _ := New(WithAdapter[rating](ratingAdapter{}))

	data, err := c.Marshal(rating{Score: 9, Scale: 10})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"9/10"` {
		t.Errorf("Marshal() = %s, want %s", data, `"9/10"`)
	}

	var got rating
	if err := c.Unmarshal([]byte(`"9/10"`), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got != (rating{Score: 9, Scale: 10}) {
		t.Errorf("Unmarshal() = %+v, want {9 10}", got)
	}
}

func TestAdapter_NullBypassesDecode(t *testing.T) {
	var encodes, decodes int
	c, _ := New(WithAdapter[rating](countingAdapter{encodes: &encodes, decodes: &decodes}))

	got := review{Rating: rating{Score: 1, Scale: 2}}
	if err := c.Unmarshal([]byte(`{"rating":null}`), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decodes != 0 {
		t.Errorf("adapter consulted %d times for null, want 0", decodes)
	}
	if got.Rating != (rating{Score: 1, Scale: 2}) {
		t.Errorf("null should leave the destination untouched, got %+v", got.Rating)
	}
}

func TestAdapter_NilTargetValueEncodesNull(t *testing.T) {
	type tagged struct {
		Tags []string
	}

	var encodes, decodes int
	adapter := countingAdapter{encodes: &encodes, decodes: &decodes}
	c, _ := New(WithAdapter[[]string](adapter))

	data, err := c.Marshal(tagged{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"tags":null}` {
		t.Errorf("Marshal() = %s, want %s", data, `{"tags":null}`)
	}
	if encodes != 0 {
		t.Errorf("adapter consulted %d times for nil value, want 0", encodes)
	}
}

func TestAdapter_DecodeTypeMismatch(t *testing.T) {
	c, _ := New(WithAdapter[rating](wrongTypeAdapter{}))

	var got review
	if err := c.Unmarshal([]byte(`{"rating":"anything"}`), &got); err == nil {
		t.Error("Unmarshal() should reject an adapter value of the wrong type")
	}
}

func TestAdapter_EncodeError(t *testing.T) {
	c, _ := New(WithAdapter[rating](failingAdapter{}))

	if _, err := c.Marshal(review{}); err == nil {
		t.Error("Marshal() should propagate adapter encode failures")
	}
}

func TestAdapter_DecodeError(t *testing.T) {
	c, _ := New(WithAdapter[rating](failingAdapter{}))

	var got review
	if err := c.Unmarshal([]byte(`{"rating":"4/5"}`), &got); err == nil {
		t.Error("Unmarshal() should propagate adapter decode failures")
	}
}

func TestWithAdapterFor_RuntimeTarget(t *testing.T) {
	c, err := New(WithAdapterFor(reflect.TypeFor[rating](), ratingAdapter{}))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	data, err := c.Marshal(rating{Score: 3, Scale: 5})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"3/5"` {
		t.Errorf("Marshal() = %s, want %s", data, `"3/5"`)
	}
}

func TestAdapter_LaterRegistrationWins(t *testing.T) {
	c, err := New(
		WithAdapter[rating](failingAdapter{}),
		WithAdapter[rating](ratingAdapter{}),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	data, err := c.Marshal(rating{Score: 4, Scale: 5})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"4/5"` {
		t.Errorf("Marshal() = %s, want %s", data, `"4/5"`)
	}
}

func TestAdapter_PointerFieldUsesElemAdapter(t *testing.T) {
	type entry struct {
		Rating *rating
	}

	c, _ := New(WithAdapter[rating](ratingAdapter{}))

	data, err := c.Marshal(entry{Rating: &rating{Score: 2, Scale: 5}})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"rating":"2/5"}` {
		t.Errorf("Marshal() = %s, want %s", data, `{"rating":"2/5"}`)
	}

	data, err = c.Marshal(entry{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"rating":null}` {
		t.Errorf("Marshal() = %s, want %s", data, `{"rating":null}`)
	}
}

func TestAdapter_OmitEmptyFields(t *testing.T) {
	type entry struct {
		Name   string   `json:"name"`
		Rating rating   `json:"rating,omitempty"`
		Stars  int      `json:"stars,omitempty"`
		Tags   []string `json:"tags,omitempty"`
	}

	// Tags carries an adapter that refuses every call: an omitted field must
	// never reach its adapter.
	c, err := New(
		WithAdapter[rating](ratingAdapter{}),
		WithAdapter[int](starsAdapter{}),
		WithAdapter[[]string](failingAdapter{}),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	data, err := c.Marshal(entry{Name: "gherkin"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	// Zero int and nil slice are omitted; a struct value is never empty.
	want := `{"name":"gherkin","rating":"0/0"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	data, err = c.Marshal(entry{
		Name:   "gherkin",
		Rating: rating{Score: 4, Scale: 5},
		Stars:  3,
		Tags:   []string{},
	})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want = `{"name":"gherkin","rating":"4/5","stars":"***"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
