package mosaic

import "errors"

// Common errors for surface operations. Every validating operation is
// all-or-nothing: on error the arena and tile records are untouched and
// the Surface remains fully usable.
var (
	// ErrInvalidDimension is returned when a grid field is non-positive.
	ErrInvalidDimension = errors.New("mosaic: invalid grid dimension")

	// ErrTileOutOfBounds is returned when a tile position is outside the grid.
	ErrTileOutOfBounds = errors.New("mosaic: tile position out of bounds")

	// ErrEmptyImage is returned when a nil or zero-sized image is loaded.
	ErrEmptyImage = errors.New("mosaic: empty source image")

	// ErrScaleOutOfRange is returned when a tile scale is outside [MinScale, MaxScale].
	ErrScaleOutOfRange = errors.New("mosaic: scale out of range")

	// ErrOffsetOutOfRange is returned when a tile offset exceeds the tile dimensions.
	ErrOffsetOutOfRange = errors.New("mosaic: offset out of range")

	// ErrTileEmpty is returned when re-placing a tile that has no loaded image.
	ErrTileEmpty = errors.New("mosaic: tile has no image")

	// ErrInvalidColor is returned when a hex color string cannot be parsed.
	ErrInvalidColor = errors.New("mosaic: invalid color")
)
