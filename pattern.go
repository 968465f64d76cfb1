package mosaic

import "math"

// Pattern animation speeds per channel, in radians per frame.
const (
	patternSpeedR = 0.1
	patternSpeedG = 0.15
	patternSpeedB = 0.2
)

// GeneratePattern paints every unoccupied tile with a smooth animated
// sine pattern. Each pixel is a pure function of (x, y, frame):
//
//	r = sin(x + frame*0.1)*127 + 128
//	g = sin(y + frame*0.15)*127 + 128
//	b = sin(x+y + frame*0.2)*127 + 128
//	a = 255
//
// so identical frames produce byte-identical output. The channels
// depend only on x, y and x+y respectively, so one precomputed table
// per channel serves the whole frame; the tables and the arena are
// reused, keeping the call allocation-free.
func (s *Surface) GeneratePattern(frame int) {
	f := float64(frame)
	for x := range s.sinX {
		s.sinX[x] = uint8(math.Sin(float64(x)+f*patternSpeedR)*127 + 128)
	}
	for y := range s.sinY {
		s.sinY[y] = uint8(math.Sin(float64(y)+f*patternSpeedG)*127 + 128)
	}
	for v := range s.sinXY {
		s.sinXY[v] = uint8(math.Sin(float64(v)+f*patternSpeedB)*127 + 128)
	}

	tw, th := s.grid.TileWidth, s.grid.TileHeight
	for row := 0; row < s.grid.Rows; row++ {
		for col := 0; col < s.grid.Cols; col++ {
			if s.tiles[s.grid.SlotIndex(col, row)] != nil {
				continue
			}
			ox, oy := s.grid.TileOrigin(col, row)
			for y := oy; y < oy+th; y++ {
				i := y*s.stride + ox*4
				for x := ox; x < ox+tw; x++ {
					s.data[i+0] = s.sinX[x]
					s.data[i+1] = s.sinY[y]
					s.data[i+2] = s.sinXY[x+y]
					s.data[i+3] = 255
					i += 4
				}
			}
		}
	}
}

// FillBackground paints every unoccupied tile with the background
// color, using the same occupancy rule as GeneratePattern. Used instead
// of the animated pattern while the driver is idle. Allocation-free:
// one cached background row is copied across the arena.
func (s *Surface) FillBackground() {
	th := s.grid.TileHeight
	for row := 0; row < s.grid.Rows; row++ {
		for col := 0; col < s.grid.Cols; col++ {
			if s.tiles[s.grid.SlotIndex(col, row)] != nil {
				continue
			}
			ox, oy := s.grid.TileOrigin(col, row)
			for y := oy; y < oy+th; y++ {
				copy(s.data[y*s.stride+ox*4:], s.rowBuf)
			}
		}
	}
}
