package scanbook

import (
	"encoding/base64"
	"fmt"
	"os"
)

// dataURIPrefix declares the embedded payload type. Only JPEG images are
// discovered, so the mime type is fixed.
const dataURIPrefix = "data:image/jpeg;base64,"

// EncodeImage wraps raw image bytes in a base64 data URI. The encoding
// is byte-for-byte lossless: no re-compression, no transcoding. There is
// no size cap; large images simply produce large output.
func EncodeImage(data []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(data)
}

// ReadImageDataURI reads an image file and returns it as a data URI.
func ReadImageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadImage, err)
	}
	return EncodeImage(data), nil
}
