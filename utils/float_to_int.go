// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample-conversion helpers shared by the
// audio pipeline.
package utils

// Float32ToInt16 converts one float32 sample in [-1, 1] to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32sToInt16 batch-converts float32 samples to 16-bit PCM.
func Float32sToInt16(src []float32) []int16 {
	out := make([]int16, len(src))
	for i, x := range src {
		out[i] = Float32ToInt16(x)
	}
	return out
}

// Float64sToFloat32 narrows float64 samples for the encoding pipeline.
func Float64sToFloat32(src []float64) []float32 {
	out := make([]float32, len(src))
	for i, x := range src {
		out[i] = float32(x)
	}
	return out
}
