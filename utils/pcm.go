// SPDX-License-Identifier: EPL-2.0

package utils

// MaxAmplitude returns the largest positive sample value for bitDepth.
// Only 16 and 24 bit streams are supported.
func MaxAmplitude(bitDepth uint32) (int, bool) {
	switch bitDepth {
	case 16:
		return 1<<15 - 1, true
	case 24:
		return 1<<23 - 1, true
	default:
		return 0, false
	}
}

// ToInt16 keeps the low 16 bits of a decoded sample.
func ToInt16(x int) int16 {
	return int16(x)
}

// SignExtend24 drops any bits of x above the low 24 and sign-extends the
// result back into an int32.
func SignExtend24(x int) int32 {
	return (int32(x) << 8) >> 8
}

// AbsInt returns |x| as uint64 so that the most negative value does not overflow.
func AbsInt(x int) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}
