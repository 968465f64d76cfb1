package compose

import "math"

// Resample scales src (srcW x srcH straight RGBA) into dst
// (dstW x dstH) using bilinear interpolation with center-aligned
// sampling and edge clamp. The result is a pure function of the input
// pixels and dimensions. dst must hold at least dstW*dstH*4 bytes.
func Resample(dst []byte, dstW, dstH int, src []byte, srcW, srcH int) {
	if dstW == srcW && dstH == srcH {
		copy(dst, src[:srcW*srcH*4])
		return
	}

	xr := float64(srcW) / float64(dstW)
	yr := float64(srcH) / float64(dstH)

	for dy := 0; dy < dstH; dy++ {
		fy := (float64(dy)+0.5)*yr - 0.5
		y0 := int(math.Floor(fy))
		ty := fy - float64(y0)
		y1 := clamp(y0+1, 0, srcH-1)
		y0 = clamp(y0, 0, srcH-1)

		for dx := 0; dx < dstW; dx++ {
			fx := (float64(dx)+0.5)*xr - 0.5
			x0 := int(math.Floor(fx))
			tx := fx - float64(x0)
			x1 := clamp(x0+1, 0, srcW-1)
			x0 = clamp(x0, 0, srcW-1)

			i00 := (y0*srcW + x0) * 4
			i10 := (y0*srcW + x1) * 4
			i01 := (y1*srcW + x0) * 4
			i11 := (y1*srcW + x1) * 4
			di := (dy*dstW + dx) * 4

			for c := 0; c < 4; c++ {
				v := lerp2D(
					float64(src[i00+c]), float64(src[i10+c]),
					float64(src[i01+c]), float64(src[i11+c]),
					tx, ty)
				dst[di+c] = uint8(v + 0.5)
			}
		}
	}
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
