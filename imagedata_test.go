package scanbook

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// decodeDataURI reverses EncodeImage for round-trip checks.
func decodeDataURI(t *testing.T, uri string) []byte {
	t.Helper()
	payload, ok := strings.CutPrefix(uri, dataURIPrefix)
	if !ok {
		t.Fatalf("data URI %q lacks prefix %q", uri[:min(len(uri), 40)], dataURIPrefix)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	return data
}

func TestEncodeImage_RoundTrip(t *testing.T) {
	t.Parallel()

	// Pseudo-random multi-megabyte payload; the encoding must be
	// byte-for-byte lossless at any size, including zero.
	large := make([]byte, 3<<20)
	for i := range large {
		large[i] = byte(i*31 + i>>8)
	}

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "zero length", input: []byte{}},
		{name: "single byte", input: []byte{0x00}},
		{name: "jpeg magic", input: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}},
		{name: "all byte values", input: func() []byte {
			b := make([]byte, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
		{name: "multi megabyte", input: large},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uri := EncodeImage(tt.input)
			if got := decodeDataURI(t, uri); !bytes.Equal(got, tt.input) {
				t.Errorf("round trip changed %d bytes into %d bytes", len(tt.input), len(got))
			}
		})
	}
}

func TestEncodeImage_Prefix(t *testing.T) {
	t.Parallel()

	uri := EncodeImage([]byte("jpegdata"))
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Errorf("uri = %q, want image/jpeg data URI prefix", uri)
	}
}

func TestReadImageDataURI(t *testing.T) {
	t.Parallel()

	raw := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x12, 0x34}
	dir := t.TempDir()
	path := filepath.Join(dir, "pagina_001.jpg")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	uri, err := ReadImageDataURI(path)
	if err != nil {
		t.Fatalf("ReadImageDataURI: %v", err)
	}
	if got := decodeDataURI(t, uri); !bytes.Equal(got, raw) {
		t.Errorf("round trip = %v, want %v", got, raw)
	}
}

func TestReadImageDataURI_Missing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "gone.jpg")
	_, err := ReadImageDataURI(missing)
	if !errors.Is(err, ErrReadImage) {
		t.Errorf("err = %v, want ErrReadImage", err)
	}
	if err != nil && !strings.Contains(err.Error(), "gone.jpg") {
		t.Errorf("error %q should name the offending file", err)
	}
}
