// Package export encodes surface content for delivery outside the
// process: animated GIFs of the procedural pattern.
package export

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/mosaicgrid/mosaic"
)

// maxPaletteColors is the GIF per-frame palette limit.
const maxPaletteColors = 256

// ErrNoFrames is returned when an animation with zero frames is requested.
var ErrNoFrames = errors.New("export: animation needs at least one frame")

// Animation renders frames consecutive pattern frames of s and
// quantizes each to a paletted image. delay is the per-frame delay in
// hundredths of a second. The surface's loaded tiles stay fixed while
// the pattern animates behind them, exactly as a live viewer would
// present it.
//
// Animation mutates s (it drives GeneratePattern); the caller must not
// read the arena concurrently.
func Animation(s *mosaic.Surface, frames, delay int) (*gif.GIF, error) {
	if frames <= 0 {
		return nil, ErrNoFrames
	}

	g := &gif.GIF{
		Image: make([]*image.Paletted, 0, frames),
		Delay: make([]int, 0, frames),
	}
	q := quantize.MedianCutQuantizer{}

	bounds := image.Rect(0, 0, s.Width(), s.Height())
	for frame := 0; frame < frames; frame++ {
		s.GeneratePattern(frame)
		src := s.ToImage()

		pm := image.NewPaletted(bounds, q.Quantize(make(color.Palette, 0, maxPaletteColors), src))
		draw.Draw(pm, bounds, src, bounds.Min, draw.Src)

		g.Image = append(g.Image, pm)
		g.Delay = append(g.Delay, delay)
	}

	mosaic.Logger().Debug("animation rendered", "frames", frames, "delay", delay)
	return g, nil
}

// EncodeGIF renders an animation of s and writes it to w as GIF.
func EncodeGIF(w io.Writer, s *mosaic.Surface, frames, delay int) error {
	g, err := Animation(s, frames, delay)
	if err != nil {
		return err
	}
	return gif.EncodeAll(w, g)
}
