package mosaic

// Grid describes a fixed arrangement of equally sized tiles. It is
// immutable once a Surface is built from it; changing the layout means
// constructing a new Surface and migrating tiles in the driver.
type Grid struct {
	TileWidth  int
	TileHeight int
	Cols       int
	Rows       int
}

// Validate reports whether every grid field is strictly positive.
func (g Grid) Validate() error {
	if g.TileWidth <= 0 || g.TileHeight <= 0 || g.Cols <= 0 || g.Rows <= 0 {
		return ErrInvalidDimension
	}
	return nil
}

// SurfaceWidth returns the total surface width in pixels.
func (g Grid) SurfaceWidth() int { return g.TileWidth * g.Cols }

// SurfaceHeight returns the total surface height in pixels.
func (g Grid) SurfaceHeight() int { return g.TileHeight * g.Rows }

// NumTiles returns the number of tile slots in the grid.
func (g Grid) NumTiles() int { return g.Cols * g.Rows }

// Contains reports whether (col, row) is a valid tile position.
func (g Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// TileOrigin returns the top-left pixel coordinate of the tile at (col, row).
func (g Grid) TileOrigin(col, row int) (x, y int) {
	return col * g.TileWidth, row * g.TileHeight
}

// SlotIndex returns the linear slot index of (col, row).
func (g Grid) SlotIndex(col, row int) int {
	return row*g.Cols + col
}
