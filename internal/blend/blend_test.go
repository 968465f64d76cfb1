package blend

import (
	"bytes"
	"testing"
)

// TestOver covers the fast paths and the general straight-alpha blend.
func TestOver(t *testing.T) {
	tests := []struct {
		name string
		dst  []byte
		src  []byte
		want []byte
	}{
		{
			name: "opaque source copies",
			dst:  []byte{10, 20, 30, 255},
			src:  []byte{200, 100, 50, 255},
			want: []byte{200, 100, 50, 255},
		},
		{
			name: "transparent source is a no-op",
			dst:  []byte{10, 20, 30, 255},
			src:  []byte{200, 100, 50, 0},
			want: []byte{10, 20, 30, 255},
		},
		{
			name: "half red over opaque white",
			dst:  []byte{255, 255, 255, 255},
			src:  []byte{255, 0, 0, 128},
			want: []byte{255, 127, 127, 255},
		},
		{
			name: "half red over transparent",
			dst:  []byte{0, 0, 0, 0},
			src:  []byte{255, 0, 0, 128},
			want: []byte{255, 0, 0, 128},
		},
		{
			name: "both transparent stays zero",
			dst:  []byte{0, 0, 0, 0},
			src:  []byte{80, 80, 80, 0},
			want: []byte{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := append([]byte(nil), tt.dst...)
			Over(dst, tt.src)
			if !bytes.Equal(dst, tt.want) {
				t.Errorf("got %v, want %v", dst, tt.want)
			}
		})
	}
}

// TestOverAlpha checks the composite alpha of two partial coverages.
func TestOverAlpha(t *testing.T) {
	// outA = 128 + 128*(255-128)/255 ~ 192
	dst := []byte{0, 255, 0, 128}
	Over(dst, []byte{255, 0, 0, 128})
	if dst[3] != 192 {
		t.Errorf("composite alpha: got %d, want 192", dst[3])
	}
}

// TestOverRow verifies per-pixel application across a row.
func TestOverRow(t *testing.T) {
	dst := []byte{
		255, 255, 255, 255,
		255, 255, 255, 255,
		255, 255, 255, 255,
	}
	src := []byte{
		255, 0, 0, 255, // copy
		0, 0, 255, 0, // skip
		255, 0, 0, 128, // blend
	}
	OverRow(dst, src)

	want := []byte{
		255, 0, 0, 255,
		255, 255, 255, 255,
		255, 127, 127, 255,
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("got %v, want %v", dst, want)
	}
}

// BenchmarkOverRow measures the blit inner loop on a mixed-alpha row.
func BenchmarkOverRow(b *testing.B) {
	const pixels = 400
	dst := make([]byte, pixels*4)
	src := make([]byte, pixels*4)
	for i := 0; i < pixels; i++ {
		src[i*4+0] = uint8(i)
		src[i*4+1] = uint8(i * 3)
		src[i*4+2] = uint8(i * 7)
		src[i*4+3] = uint8(i % 256)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		OverRow(dst, src)
	}
}
