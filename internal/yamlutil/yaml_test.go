package yamlutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("name: folio\ncount: 3\n"), &s)
	if err != nil {
		t.Fatalf("UnmarshalStrict: %v", err)
	}
	if s.Name != "folio" || s.Count != 3 {
		t.Errorf("got %+v", s)
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("name: folio\nbogus: 1\n"), &s)
	if err == nil {
		t.Fatal("unknown field should be rejected")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q should name the unknown field", err)
	}
}

func TestUnmarshalStrict_Validation(t *testing.T) {
	t.Parallel()

	var s sample

	if err := UnmarshalStrict(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data: err = %v, want ErrNilData", err)
	}
	if err := UnmarshalStrict([]byte{}, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("empty data: err = %v, want ErrNilData", err)
	}
	if err := UnmarshalStrict([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination: err = %v, want ErrNilDestination", err)
	}

	huge := bytes.Repeat([]byte("a"), MaxInputSize+1)
	if err := UnmarshalStrict(huge, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input: err = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := Marshal(sample{Name: "folio", Count: 2})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back sample
	if err := UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if back.Name != "folio" || back.Count != 2 {
		t.Errorf("round trip = %+v", back)
	}
}
