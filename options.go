package mosaic

// Option configures a Surface during creation.
//
// Example:
//
//	s, err := mosaic.New(grid, mosaic.WithBackground(mosaic.White))
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	background Color
}

// WithBackground sets the initial background color. The zero value
// (transparent black) matches a freshly constructed arena.
func WithBackground(c Color) Option {
	return func(o *surfaceOptions) {
		o.background = c
	}
}

// TileOption configures the placement of an image inside its tile.
// Used by both LoadTile (over the defaults scale=1, offset=0,0) and
// PlaceTile (over the tile's current placement).
type TileOption func(*tilePlacement)

// tilePlacement holds a tile's scale and offset.
type tilePlacement struct {
	scale   float64
	offsetX int
	offsetY int
}

// WithScale sets the user scale applied on top of the aspect-preserving
// fit scale. Must be within [MinScale, MaxScale].
func WithScale(scale float64) TileOption {
	return func(p *tilePlacement) {
		p.scale = scale
	}
}

// WithOffset shifts the image from its centered position, in pixels.
// Each axis must be within plus or minus the tile dimension.
func WithOffset(x, y int) TileOption {
	return func(p *tilePlacement) {
		p.offsetX = x
		p.offsetY = y
	}
}
