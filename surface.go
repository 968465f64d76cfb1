package mosaic

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/mosaicgrid/mosaic/internal/compose"
)

// Scale limits for tile placement, applied on top of the
// aspect-preserving fit scale.
const (
	MinScale = 0.10
	MaxScale = 5.00
)

// tile is the per-slot record. The source image is retained, never
// consumed, so scale, offset and background changes re-composite from
// the original decoded pixels.
type tile struct {
	img       *Image
	placement tilePlacement
}

// Surface owns a contiguous straight-RGBA pixel arena covering a fixed
// grid of tiles, plus the per-slot tile records and the background
// color. All state lives in the arena and a parallel slice indexed by
// slot; there is no shared pointer graph.
//
// Surface is NOT safe for concurrent use. Exactly one goroutine may
// operate on it at a time, and every operation runs to completion
// before the arena may be read.
type Surface struct {
	grid   Grid
	stride int // arena bytes per row
	data   []byte
	tiles  []*tile
	bg     Color

	// Scratch buffers reused across calls so the per-frame paths and
	// re-composition stay allocation-free after construction.
	scratch []byte // resampled source pixels for the current composite
	rowBuf  []byte // one tile row of background color
	sinX    []byte // pattern table over x
	sinY    []byte // pattern table over y
	sinXY   []byte // pattern table over x+y
}

// New creates a surface for the given grid with a zero-initialized
// arena. The zero background (transparent black) matches the fresh
// arena; use WithBackground to start with a visible color.
func New(grid Grid, opts ...Option) (*Surface, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	var o surfaceOptions
	for _, opt := range opts {
		opt(&o)
	}

	w, h := grid.SurfaceWidth(), grid.SurfaceHeight()
	s := &Surface{
		grid:   grid,
		stride: w * 4,
		data:   make([]byte, w*h*4),
		tiles:  make([]*tile, grid.NumTiles()),
		bg:     o.background,
		rowBuf: make([]byte, grid.TileWidth*4),
		sinX:   make([]byte, w),
		sinY:   make([]byte, h),
		sinXY:  make([]byte, w+h),
	}
	s.fillRowBuf()

	Logger().Debug("surface created",
		"width", w, "height", h,
		"cols", grid.Cols, "rows", grid.Rows)
	return s, nil
}

// Grid returns the grid the surface was built from.
func (s *Surface) Grid() Grid { return s.grid }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.grid.SurfaceWidth() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.grid.SurfaceHeight() }

// TileWidth returns the width of one tile in pixels.
func (s *Surface) TileWidth() int { return s.grid.TileWidth }

// TileHeight returns the height of one tile in pixels.
func (s *Surface) TileHeight() int { return s.grid.TileHeight }

// Data returns the raw arena bytes (row-major straight RGBA over the
// whole surface). The slice stays valid until the next mutating call;
// the arena is mutated in place and never reallocated.
func (s *Surface) Data() []byte { return s.data }

// Background returns the current background color.
func (s *Surface) Background() Color { return s.bg }

// Occupied reports whether the tile at (col, row) holds a loaded image.
// Out-of-grid positions report false.
func (s *Surface) Occupied(col, row int) bool {
	return s.grid.Contains(col, row) && s.tiles[s.grid.SlotIndex(col, row)] != nil
}

// TilePlacement returns the scale and offset of the tile at (col, row).
// ok is false when the slot holds no image.
func (s *Surface) TilePlacement(col, row int) (scale float64, offsetX, offsetY int, ok bool) {
	if !s.Occupied(col, row) {
		return 0, 0, 0, false
	}
	p := s.tiles[s.grid.SlotIndex(col, row)].placement
	return p.scale, p.offsetX, p.offsetY, true
}

// LoadTile places img into the tile at (col, row), replacing any
// previous image there. The image is resized with an aspect-preserving
// fit scale multiplied by the user scale, centered, shifted by the user
// offset and hard-clipped to the tile rectangle. Validation happens
// before any mutation: on error the arena and tile records are
// unchanged.
func (s *Surface) LoadTile(col, row int, img *Image, opts ...TileOption) error {
	if !s.grid.Contains(col, row) {
		return ErrTileOutOfBounds
	}
	if img == nil || img.width <= 0 || img.height <= 0 {
		return ErrEmptyImage
	}

	p := tilePlacement{scale: 1.0}
	for _, opt := range opts {
		opt(&p)
	}
	if err := s.validatePlacement(p); err != nil {
		return err
	}

	t := &tile{img: img, placement: p}
	s.tiles[s.grid.SlotIndex(col, row)] = t
	s.composite(col, row, t)
	return nil
}

// PlaceTile re-composites the tile at (col, row) from its retained
// source image with an updated placement. Options override the tile's
// current scale and offset; unspecified values are kept.
func (s *Surface) PlaceTile(col, row int, opts ...TileOption) error {
	if !s.grid.Contains(col, row) {
		return ErrTileOutOfBounds
	}
	t := s.tiles[s.grid.SlotIndex(col, row)]
	if t == nil {
		return ErrTileEmpty
	}

	p := t.placement
	for _, opt := range opts {
		opt(&p)
	}
	if err := s.validatePlacement(p); err != nil {
		return err
	}

	t.placement = p
	s.composite(col, row, t)
	return nil
}

// ClearTile fills the tile rectangle at (col, row) with the background
// color and drops the tile record. Clearing an already empty slot just
// repaints it.
func (s *Surface) ClearTile(col, row int) error {
	if !s.grid.Contains(col, row) {
		return ErrTileOutOfBounds
	}
	s.tiles[s.grid.SlotIndex(col, row)] = nil
	ox, oy := s.grid.TileOrigin(col, row)
	compose.FillRect(s.data, s.stride, ox, oy, s.grid.TileWidth, s.grid.TileHeight,
		s.bg.R, s.bg.G, s.bg.B, s.bg.A)
	return nil
}

// SetBackground stores the background color and re-composites every
// loaded tile so the new color shows through transparent source pixels
// and letterbox margins. Unoccupied tiles are repainted by the next
// GeneratePattern or FillBackground pass.
func (s *Surface) SetBackground(c Color) {
	s.bg = c
	s.fillRowBuf()
	for row := 0; row < s.grid.Rows; row++ {
		for col := 0; col < s.grid.Cols; col++ {
			if t := s.tiles[s.grid.SlotIndex(col, row)]; t != nil {
				s.composite(col, row, t)
			}
		}
	}
}

// validatePlacement checks the scale and offset limits.
func (s *Surface) validatePlacement(p tilePlacement) error {
	if p.scale < MinScale || p.scale > MaxScale {
		return ErrScaleOutOfRange
	}
	if p.offsetX < -s.grid.TileWidth || p.offsetX > s.grid.TileWidth ||
		p.offsetY < -s.grid.TileHeight || p.offsetY > s.grid.TileHeight {
		return ErrOffsetOutOfRange
	}
	return nil
}

// composite redraws one tile from its retained source: clear to the
// background color, resample, blit clipped to the tile rectangle.
// Identical inputs always produce byte-identical arena content.
func (s *Surface) composite(col, row int, t *tile) {
	tw, th := s.grid.TileWidth, s.grid.TileHeight
	fit := compose.FitScale(tw, th, t.img.width, t.img.height)
	scaledW, scaledH := compose.ScaledSize(t.img.width, t.img.height, fit*t.placement.scale)

	if need := scaledW * scaledH * 4; cap(s.scratch) < need {
		s.scratch = make([]byte, need)
	}
	compose.Resample(s.scratch[:scaledW*scaledH*4], scaledW, scaledH,
		t.img.pix, t.img.width, t.img.height)

	ox, oy := s.grid.TileOrigin(col, row)
	dstX := ox + (tw-scaledW)/2 + t.placement.offsetX
	dstY := oy + (th-scaledH)/2 + t.placement.offsetY

	compose.FillRect(s.data, s.stride, ox, oy, tw, th, s.bg.R, s.bg.G, s.bg.B, s.bg.A)
	compose.BlitOver(s.data, s.stride, ox, oy, tw, th,
		s.scratch, scaledW, scaledH, dstX, dstY)

	Logger().Debug("tile composited",
		"col", col, "row", row,
		"scaledW", scaledW, "scaledH", scaledH,
		"scale", t.placement.scale,
		"offsetX", t.placement.offsetX, "offsetY", t.placement.offsetY)
}

// fillRowBuf refreshes the cached background-colored tile row.
func (s *Surface) fillRowBuf() {
	for i := 0; i < len(s.rowBuf); i += 4 {
		s.rowBuf[i+0] = s.bg.R
		s.rowBuf[i+1] = s.bg.G
		s.rowBuf[i+2] = s.bg.B
		s.rowBuf[i+3] = s.bg.A
	}
}

// ToImage returns the arena as a standard library image without
// copying. The view aliases the arena and is valid until the next
// mutating call.
func (s *Surface) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    s.data,
		Stride: s.stride,
		Rect:   image.Rect(0, 0, s.Width(), s.Height()),
	}
}

// EncodePNG writes the current surface content to w as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.ToImage())
}

// SavePNG saves the current surface content to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return s.EncodePNG(f)
}
