//go:build purego || !amd64

package simd

// AddF32x4 computes dst[i] = a[i] + b[i] for four float32 lanes.
func AddF32x4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubF32x4 computes dst[i] = a[i] - b[i] for four float32 lanes.
func SubF32x4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// MulF32x4 computes dst[i] = a[i] * b[i] for four float32 lanes.
func MulF32x4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// DivF32x4 computes dst[i] = a[i] / b[i] for four float32 lanes.
// Division by zero follows IEEE 754 semantics.
func DivF32x4(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// MinF32x4 computes dst[i] = min(a[i], b[i]) for four float32 lanes.
func MinF32x4(dst, a, b *[4]float32) {
	for i := range dst {
		if a[i] < b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// MaxF32x4 computes dst[i] = max(a[i], b[i]) for four float32 lanes.
func MaxF32x4(dst, a, b *[4]float32) {
	for i := range dst {
		if a[i] > b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// ScaleF32x4 computes dst[i] = a[i] * s for four float32 lanes.
func ScaleF32x4(dst, a *[4]float32, s float32) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// DotF32x4 returns the four-lane dot product of a and b. The summation
// order (lanes 0+1, then 2+3) matches the assembly reduction.
func DotF32x4(a, b *[4]float32) float32 {
	return (a[0]*b[0] + a[1]*b[1]) + (a[2]*b[2] + a[3]*b[3])
}

// AddF64x4 computes dst[i] = a[i] + b[i] for four float64 lanes.
func AddF64x4(dst, a, b *[4]float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubF64x4 computes dst[i] = a[i] - b[i] for four float64 lanes.
func SubF64x4(dst, a, b *[4]float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// MulF64x4 computes dst[i] = a[i] * b[i] for four float64 lanes.
func MulF64x4(dst, a, b *[4]float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// DivF64x4 computes dst[i] = a[i] / b[i] for four float64 lanes.
// Division by zero follows IEEE 754 semantics.
func DivF64x4(dst, a, b *[4]float64) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// MinF64x4 computes dst[i] = min(a[i], b[i]) for four float64 lanes.
func MinF64x4(dst, a, b *[4]float64) {
	for i := range dst {
		if a[i] < b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// MaxF64x4 computes dst[i] = max(a[i], b[i]) for four float64 lanes.
func MaxF64x4(dst, a, b *[4]float64) {
	for i := range dst {
		if a[i] > b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// ScaleF64x4 computes dst[i] = a[i] * s for four float64 lanes.
func ScaleF64x4(dst, a *[4]float64, s float64) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// DotF64x4 returns the four-lane dot product of a and b. The summation
// order (lanes 0+1, then 2+3) matches the assembly reduction.
func DotF64x4(a, b *[4]float64) float64 {
	return (a[0]*b[0] + a[1]*b[1]) + (a[2]*b[2] + a[3]*b[3])
}
