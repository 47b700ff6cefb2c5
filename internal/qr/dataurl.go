package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
)

const pngPrefix = "data:image/png;base64,"

// EncodePNG encodes img as a PNG data URL.
func EncodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return pngPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeJPEG encodes img as a JPEG data URL at maximum quality.
func EncodeJPEG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeDataURL wraps raw image bytes in a data URL with the given MIME type.
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodePayload extracts the raw bytes from a base64 data URL
// ("data:image/...;base64,...").
func DecodePayload(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, fmt.Errorf("not a data url")
	}
	idx := strings.Index(dataURL, ",")
	if idx < 0 {
		return nil, fmt.Errorf("malformed data url")
	}
	if !strings.HasSuffix(dataURL[:idx], ";base64") {
		return nil, fmt.Errorf("data url is not base64-encoded")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return raw, nil
}

// DecodeImage parses a base64 data URL and decodes the embedded raster
// image.
func DecodeImage(dataURL string) (image.Image, error) {
	raw, err := DecodePayload(dataURL)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
