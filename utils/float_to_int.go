package utils

import "math"

// Float32ToInt16 maps x from [-1, 1] to a signed 16-bit sample, rounding to
// the nearest value. Inputs outside the range are clamped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on both sides keeps the mapping symmetric
	return int16(math.Round(float64(x) * math.MaxInt16))
}

// Float32sToInts converts src into 16-bit samples stored in dst and returns
// the number converted, min(len(dst), len(src)).
func Float32sToInts(dst []int, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = int(Float32ToInt16(src[i]))
	}
	return n
}
