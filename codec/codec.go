// Package codec turns encoded image bytes into mosaic images.
//
// The engine core never decodes: the driver decodes first, then hands
// the resulting image to the surface. Std is the default decoder,
// backed by the standard library image registry with PNG, JPEG, GIF,
// BMP, TIFF and WebP registered.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mosaicgrid/mosaic"
)

// Common errors for decoding.
var (
	// ErrUnsupportedFormat is returned when no registered format
	// matches the input bytes.
	ErrUnsupportedFormat = errors.New("codec: unsupported image format")

	// ErrDecode wraps failures from a recognized format's decoder.
	ErrDecode = errors.New("codec: decode failed")
)

// Decoder turns encoded bytes into a decoded straight-RGBA image.
type Decoder interface {
	Decode(data []byte) (*mosaic.Image, error)
}

// Std decodes through the standard library image registry.
type Std struct{}

// Decode decodes data into a mosaic image. Unrecognized input fails
// with ErrUnsupportedFormat; failures inside a recognized format's
// decoder are wrapped so errors.Is(err, ErrDecode) holds.
func (Std) Decode(data []byte) (*mosaic.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := img.Bounds()
	mosaic.Logger().Debug("image decoded",
		"format", format, "width", b.Dx(), "height", b.Dy())
	return mosaic.FromStdImage(img), nil
}
