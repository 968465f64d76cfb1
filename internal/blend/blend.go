// Package blend provides straight-alpha color blending on raw RGBA bytes.
package blend

// Over composites the 4-byte straight-RGBA pixel src over dst, writing
// the result into dst. Fully opaque sources copy, fully transparent
// sources leave dst untouched; everything else takes the full blend path.
func Over(dst, src []byte) {
	sa := src[3]
	switch sa {
	case 255:
		dst[0] = src[0]
		dst[1] = src[1]
		dst[2] = src[2]
		dst[3] = 255
	case 0:
		// Transparent source leaves the destination as is.
	default:
		overFull(dst, src)
	}
}

// OverRow composites a row of straight-RGBA pixels src over dst.
// Both slices must have the same length, a multiple of 4.
func OverRow(dst, src []byte) {
	for i := 0; i+4 <= len(src); i += 4 {
		Over(dst[i:i+4], src[i:i+4])
	}
}

// overFull is the general source-over case for straight alpha:
//
//	outA = srcA + dstA*(1-srcA)
//	outC = (srcC*srcA + dstC*dstA*(1-srcA)) / outA
//
// computed in integer arithmetic with round-half-up division.
func overFull(dst, src []byte) {
	sa := uint32(src[3])
	da := uint32(dst[3])
	inv := 255 - sa

	oa := sa + (da*inv+127)/255
	if oa == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}

	den := oa * 255
	for i := 0; i < 3; i++ {
		num := uint32(src[i])*sa*255 + uint32(dst[i])*da*inv
		dst[i] = uint8((num + den/2) / den)
	}
	dst[3] = uint8(oa)
}
