package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// ImagePayload is an image result encoded for transport: base64 PNG plus
// its dimensions.
type ImagePayload struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePayload encodes an image as a base64 PNG payload.
func EncodePayload(img image.Image) (*ImagePayload, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &ImagePayload{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// DecodeBase64 decodes a base64 image payload (PNG, JPEG or GIF) into an
// image.
func DecodeBase64(data string) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ToNRGBA returns the image as an NRGBA copy anchored at the origin.
// The input is never aliased; mutating the copy leaves it untouched.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}
