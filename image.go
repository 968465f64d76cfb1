package mosaic

import (
	"image"
	"image/color"
)

// Image is a decoded raster image in straight RGBA, 4 bytes per pixel,
// row-major. Tiles retain the Image they were loaded from so that scale,
// offset and background changes can re-composite from the original pixels.
type Image struct {
	width  int
	height int
	pix    []byte
}

// NewImage creates an image from raw straight-RGBA pixel data.
// pix must hold exactly width*height*4 bytes.
func NewImage(width, height int, pix []byte) (*Image, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*4 {
		return nil, ErrEmptyImage
	}
	return &Image{width: width, height: height, pix: pix}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// Pix returns the raw pixel data (straight RGBA).
func (im *Image) Pix() []byte { return im.pix }

// FromStdImage converts a standard library image to an Image.
// *image.NRGBA sources are copied row by row; everything else goes
// through the generic color model conversion.
func FromStdImage(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return &Image{}
	}
	pix := make([]byte, w*h*4)

	if n, ok := src.(*image.NRGBA); ok {
		base := n.PixOffset(bounds.Min.X, bounds.Min.Y)
		for y := 0; y < h; y++ {
			srcRow := n.Pix[base+y*n.Stride : base+y*n.Stride+w*4]
			copy(pix[y*w*4:], srcRow)
		}
		return &Image{width: w, height: h, pix: pix}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*w + x) * 4
			pix[i+0] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
		}
	}
	return &Image{width: w, height: h, pix: pix}
}
