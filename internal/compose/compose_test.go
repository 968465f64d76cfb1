package compose

import (
	"bytes"
	"testing"
)

// TestFitScale checks the limiting-dimension rule.
func TestFitScale(t *testing.T) {
	tests := []struct {
		name         string
		tileW, tileH int
		srcW, srcH   int
		want         float64
	}{
		{"landscape into square", 400, 400, 800, 600, 0.5},
		{"portrait into square", 400, 400, 600, 800, 0.5},
		{"exact fit", 400, 400, 400, 400, 1.0},
		{"upscale small source", 400, 400, 100, 50, 4.0},
		{"wide tile", 200, 100, 100, 100, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitScale(tt.tileW, tt.tileH, tt.srcW, tt.srcH); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestScaledSize checks round-half-up and the 1x1 floor.
func TestScaledSize(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		scale      float64
		wantW      int
		wantH      int
	}{
		{"reference fit case", 800, 600, 0.5, 400, 300},
		{"round half up", 3, 3, 0.5, 2, 2},
		{"round down", 7, 7, 0.2, 1, 1},
		{"never collapses", 10, 10, 0.01, 1, 1},
		{"identity", 123, 45, 1.0, 123, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaledSize(tt.srcW, tt.srcH, tt.scale)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

// TestFillRect verifies fills stay inside the rectangle.
func TestFillRect(t *testing.T) {
	const w, h = 8, 6
	pix := make([]byte, w*h*4)
	FillRect(pix, w*4, 2, 1, 4, 3, 9, 8, 7, 6)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			inside := x >= 2 && x < 6 && y >= 1 && y < 4
			if inside {
				if pix[i] != 9 || pix[i+1] != 8 || pix[i+2] != 7 || pix[i+3] != 6 {
					t.Fatalf("pixel (%d, %d) not filled", x, y)
				}
			} else if pix[i] != 0 || pix[i+3] != 0 {
				t.Fatalf("pixel (%d, %d) outside rect was written", x, y)
			}
		}
	}
}

// TestBlitOverClipping verifies source pixels outside the clip
// rectangle are dropped, never wrapped.
func TestBlitOverClipping(t *testing.T) {
	const w, h = 10, 10
	src := make([]byte, 4*4*4)
	for i := 0; i < len(src); i += 4 {
		src[i+0] = 200
		src[i+3] = 255
	}

	tests := []struct {
		name       string
		dstX, dstY int
		wantPixels int // red pixels inside the 10x10 buffer
	}{
		{"fully inside", 3, 3, 16},
		{"clipped right", 8, 3, 8},
		{"clipped top-left", -2, -2, 4},
		{"fully outside", 20, 0, 0},
		{"fully outside negative", -4, -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := make([]byte, w*h*4)
			BlitOver(pix, w*4, 0, 0, w, h, src, 4, 4, tt.dstX, tt.dstY)

			count := 0
			for i := 0; i < len(pix); i += 4 {
				if pix[i] == 200 {
					count++
				}
			}
			if count != tt.wantPixels {
				t.Errorf("got %d blitted pixels, want %d", count, tt.wantPixels)
			}
		})
	}
}

// TestBlitOverClipRect verifies the clip rectangle bounds the blit even
// when the destination buffer extends beyond it.
func TestBlitOverClipRect(t *testing.T) {
	const w, h = 10, 10
	pix := make([]byte, w*h*4)
	src := make([]byte, 4*4*4)
	for i := 0; i < len(src); i += 4 {
		src[i] = 200
		src[i+3] = 255
	}

	// Clip to the 5x5 top-left quadrant; blit straddles its right edge.
	BlitOver(pix, w*4, 0, 0, 5, 5, src, 4, 4, 3, 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			inside := x >= 3 && x < 5 && y >= 1 && y < 5
			if inside && pix[i] != 200 {
				t.Fatalf("pixel (%d, %d) should be blitted", x, y)
			}
			if !inside && pix[i] != 0 {
				t.Fatalf("pixel (%d, %d) escaped the clip rect", x, y)
			}
		}
	}
}

// TestBlitOverBlends verifies the source-over rule is applied against
// existing destination content.
func TestBlitOverBlends(t *testing.T) {
	pix := []byte{255, 255, 255, 255}
	src := []byte{255, 0, 0, 128}
	BlitOver(pix, 4, 0, 0, 1, 1, src, 1, 1, 0, 0)

	want := []byte{255, 127, 127, 255}
	if !bytes.Equal(pix, want) {
		t.Errorf("got %v, want %v", pix, want)
	}
}
