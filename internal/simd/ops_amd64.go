//go:build amd64 && !purego

package simd

// SSE2 kernels, see ops_amd64.s.

// AddF32x4 computes dst[i] = a[i] + b[i] for four float32 lanes.
//
//go:noescape
func AddF32x4(dst, a, b *[4]float32)

// SubF32x4 computes dst[i] = a[i] - b[i] for four float32 lanes.
//
//go:noescape
func SubF32x4(dst, a, b *[4]float32)

// MulF32x4 computes dst[i] = a[i] * b[i] for four float32 lanes.
//
//go:noescape
func MulF32x4(dst, a, b *[4]float32)

// DivF32x4 computes dst[i] = a[i] / b[i] for four float32 lanes.
// Division by zero follows IEEE 754 semantics.
//
//go:noescape
func DivF32x4(dst, a, b *[4]float32)

// MinF32x4 computes dst[i] = min(a[i], b[i]) for four float32 lanes.
//
//go:noescape
func MinF32x4(dst, a, b *[4]float32)

// MaxF32x4 computes dst[i] = max(a[i], b[i]) for four float32 lanes.
//
//go:noescape
func MaxF32x4(dst, a, b *[4]float32)

// ScaleF32x4 computes dst[i] = a[i] * s for four float32 lanes.
//
//go:noescape
func ScaleF32x4(dst, a *[4]float32, s float32)

// DotF32x4 returns the four-lane dot product of a and b.
//
//go:noescape
func DotF32x4(a, b *[4]float32) float32

// AddF64x4 computes dst[i] = a[i] + b[i] for four float64 lanes.
//
//go:noescape
func AddF64x4(dst, a, b *[4]float64)

// SubF64x4 computes dst[i] = a[i] - b[i] for four float64 lanes.
//
//go:noescape
func SubF64x4(dst, a, b *[4]float64)

// MulF64x4 computes dst[i] = a[i] * b[i] for four float64 lanes.
//
//go:noescape
func MulF64x4(dst, a, b *[4]float64)

// DivF64x4 computes dst[i] = a[i] / b[i] for four float64 lanes.
// Division by zero follows IEEE 754 semantics.
//
//go:noescape
func DivF64x4(dst, a, b *[4]float64)

// MinF64x4 computes dst[i] = min(a[i], b[i]) for four float64 lanes.
//
//go:noescape
func MinF64x4(dst, a, b *[4]float64)

// MaxF64x4 computes dst[i] = max(a[i], b[i]) for four float64 lanes.
//
//go:noescape
func MaxF64x4(dst, a, b *[4]float64)

// ScaleF64x4 computes dst[i] = a[i] * s for four float64 lanes.
//
//go:noescape
func ScaleF64x4(dst, a *[4]float64, s float64)

// DotF64x4 returns the four-lane dot product of a and b.
//
//go:noescape
func DotF64x4(a, b *[4]float64) float64
