package scanbook

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// fallbackEncodings are tried in order after UTF-8 validation fails.
// Transcriptions come from varied legacy tools; producing readable text
// beats failing the whole batch for one file. Note ISO-8859-1 accepts
// every byte sequence, so the later entries are a contractual safety
// net rather than a reachable path.
var fallbackEncodings = []encoding.Encoding{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// DecodeText converts raw file bytes to a string, trying UTF-8, then
// ISO-8859-1, then Windows-1252, and finally lossy UTF-8 with U+FFFD
// substitution. It never fails. Content is returned as decoded, with no
// normalization.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	for _, enc := range fallbackEncodings {
		if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
			return string(decoded)
		}
	}

	// Last resort: substitute undecodable sequences.
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// ReadTextFile reads a transcription file and decodes it via DecodeText.
// Only the read itself can fail.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadText, err)
	}
	return DecodeText(data), nil
}
