// Package compose implements the tile placement math and pixel transfer
// for the mosaic surface arena: fit-scale computation, deterministic
// bilinear resampling, rectangle fills and clipped source-over blits.
package compose

import (
	"github.com/mosaicgrid/mosaic/internal/blend"
)

// FitScale returns the scale factor that makes the image's limiting
// dimension exactly match the tile's corresponding dimension, so the
// whole image fits inside the tile at user scale 1.0.
func FitScale(tileW, tileH, srcW, srcH int) float64 {
	sx := float64(tileW) / float64(srcW)
	sy := float64(tileH) / float64(srcH)
	if sx < sy {
		return sx
	}
	return sy
}

// ScaledSize returns the source dimensions multiplied by scale, rounded
// half-up. A non-empty source never collapses below 1x1.
func ScaledSize(srcW, srcH int, scale float64) (w, h int) {
	w = int(float64(srcW)*scale + 0.5)
	h = int(float64(srcH)*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// FillRect fills a w x h rectangle at (x, y) in a pixel buffer with the
// given straight-RGBA color. stride is the buffer width in bytes.
// The rectangle must lie inside the buffer.
func FillRect(pix []byte, stride, x, y, w, h int, r, g, b, a uint8) {
	if w <= 0 || h <= 0 {
		return
	}
	row := pix[y*stride+x*4:]
	for i := 0; i < w*4; i += 4 {
		row[i+0] = r
		row[i+1] = g
		row[i+2] = b
		row[i+3] = a
	}
	first := row[:w*4]
	for j := 1; j < h; j++ {
		copy(pix[(y+j)*stride+x*4:], first)
	}
}

// BlitOver composites src (srcW x srcH straight RGBA) source-over into a
// pixel buffer at (dstX, dstY), hard-clipped to the rectangle
// (clipX, clipY, clipW, clipH). Source pixels falling outside the clip
// rectangle are dropped, never wrapped.
func BlitOver(pix []byte, stride int, clipX, clipY, clipW, clipH int, src []byte, srcW, srcH int, dstX, dstY int) {
	// Intersect the destination rectangle with the clip rectangle.
	x0, y0 := dstX, dstY
	x1, y1 := dstX+srcW, dstY+srcH
	if x0 < clipX {
		x0 = clipX
	}
	if y0 < clipY {
		y0 = clipY
	}
	if x1 > clipX+clipW {
		x1 = clipX + clipW
	}
	if y1 > clipY+clipH {
		y1 = clipY + clipH
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	srcX := x0 - dstX
	srcY := y0 - dstY
	rowLen := (x1 - x0) * 4
	for y := y0; y < y1; y++ {
		si := ((srcY+y-y0)*srcW + srcX) * 4
		di := y*stride + x0*4
		blend.OverRow(pix[di:di+rowLen], src[si:si+rowLen])
	}
}
