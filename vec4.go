package linmath

import (
	"fmt"

	"linmath/internal/simd"
)

// Vec4 is a four-component vector. It mirrors Vec3 without a padding
// slot and doubles as the physical storage of Quat.
type Vec4[T Number] struct {
	v [4]T
}

// NewVec4 returns the vector (x, y, z, w).
func NewVec4[T Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{v: [4]T{x, y, z, w}}
}

// Vec4Splat returns the vector (s, s, s, s).
func Vec4Splat[T Number](s T) Vec4[T] {
	return Vec4[T]{v: [4]T{s, s, s, s}}
}

// Vec4FromVec3 returns (v.X, v.Y, v.Z, w).
func Vec4FromVec3[T Number](v Vec3[T], w T) Vec4[T] {
	return NewVec4(v.X(), v.Y(), v.Z(), w)
}

// X returns the first component.
func (v Vec4[T]) X() T { return v.v[0] }

// Y returns the second component.
func (v Vec4[T]) Y() T { return v.v[1] }

// Z returns the third component.
func (v Vec4[T]) Z() T { return v.v[2] }

// W returns the fourth component.
func (v Vec4[T]) W() T { return v.v[3] }

// XYZ returns the first three components as a Vec3.
func (v Vec4[T]) XYZ() Vec3[T] {
	return NewVec3(v.v[0], v.v[1], v.v[2])
}

// Set replaces all four components.
func (v *Vec4[T]) Set(x, y, z, w T) {
	v.v = [4]T{x, y, z, w}
}

// Zero resets the vector to (0, 0, 0, 0).
func (v *Vec4[T]) Zero() {
	v.v = [4]T{}
}

// Add returns v + o component-wise.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	if a, ok := lanes32(&v.v); ok {
		b, _ := lanes32(&o.v)
		simd.AddF32x4(a, a, b)
		return v
	}
	if a, ok := lanes64(&v.v); ok {
		b, _ := lanes64(&o.v)
		simd.AddF64x4(a, a, b)
		return v
	}
	for i := range v.v {
		v.v[i] += o.v[i]
	}
	return v
}

// Sub returns v - o component-wise.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	if a, ok := lanes32(&v.v); ok {
		b, _ := lanes32(&o.v)
		simd.SubF32x4(a, a, b)
		return v
	}
	if a, ok := lanes64(&v.v); ok {
		b, _ := lanes64(&o.v)
		simd.SubF64x4(a, a, b)
		return v
	}
	for i := range v.v {
		v.v[i] -= o.v[i]
	}
	return v
}

// Mul returns the component-wise product of v and o.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	if a, ok := lanes32(&v.v); ok {
		b, _ := lanes32(&o.v)
		simd.MulF32x4(a, a, b)
		return v
	}
	if a, ok := lanes64(&v.v); ok {
		b, _ := lanes64(&o.v)
		simd.MulF64x4(a, a, b)
		return v
	}
	for i := range v.v {
		v.v[i] *= o.v[i]
	}
	return v
}

// Div returns the component-wise quotient of v and o. For float element
// types division by zero follows IEEE 754 semantics.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	if a, ok := lanes32(&v.v); ok {
		b, _ := lanes32(&o.v)
		simd.DivF32x4(a, a, b)
		return v
	}
	if a, ok := lanes64(&v.v); ok {
		b, _ := lanes64(&o.v)
		simd.DivF64x4(a, a, b)
		return v
	}
	for i := range v.v {
		v.v[i] /= o.v[i]
	}
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	if a, ok := lanes32(&v.v); ok {
		simd.ScaleF32x4(a, a, any(s).(float32))
		return v
	}
	if a, ok := lanes64(&v.v); ok {
		simd.ScaleF64x4(a, a, any(s).(float64))
		return v
	}
	for i := range v.v {
		v.v[i] *= s
	}
	return v
}

// DivScalar returns v with every component divided by s.
func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	for i := range v.v {
		v.v[i] /= s
	}
	return v
}

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	if a, ok := lanes32(&v.v); ok {
		b, _ := lanes32(&o.v)
		return T(simd.DotF32x4(a, b))
	}
	if a, ok := lanes64(&v.v); ok {
		b, _ := lanes64(&o.v)
		return T(simd.DotF64x4(a, b))
	}
	var sum T
	for i := range v.v {
		sum += v.v[i] * o.v[i]
	}
	return sum
}

// LengthSquared returns the squared Euclidean norm of v.
func (v Vec4[T]) LengthSquared() T {
	return v.v[0]*v.v[0] + v.v[1]*v.v[1] + v.v[2]*v.v[2] + v.v[3]*v.v[3]
}

// Length returns the Euclidean norm of v.
func (v Vec4[T]) Length() T {
	return sqrtNumber(v.LengthSquared())
}

// Normalize scales v to unit length in place, resetting a vector whose
// magnitude does not exceed Epsilon to zero.
func (v *Vec4[T]) Normalize() {
	mag := v.Length()
	if float64(mag) > Epsilon {
		for i := range v.v {
			v.v[i] /= mag
		}
	} else {
		v.Zero()
	}
}

// Normalized returns a unit-length copy of v.
func (v Vec4[T]) Normalized() Vec4[T] {
	v.Normalize()
	return v
}

// Equal reports exact component equality.
func (v Vec4[T]) Equal(o Vec4[T]) bool {
	return v.v == o.v
}

// String implements fmt.Stringer.
func (v Vec4[T]) String() string {
	return fmt.Sprintf("%v, %v, %v, %v", v.v[0], v.v[1], v.v[2], v.v[3])
}

// Vec4Min returns the component-wise minimum of a and b.
func Vec4Min[T Number](a, b Vec4[T]) Vec4[T] {
	if p, ok := lanes32(&a.v); ok {
		q, _ := lanes32(&b.v)
		simd.MinF32x4(p, p, q)
		return a
	}
	if p, ok := lanes64(&a.v); ok {
		q, _ := lanes64(&b.v)
		simd.MinF64x4(p, p, q)
		return a
	}
	return NewVec4(
		Min(a.v[0], b.v[0]),
		Min(a.v[1], b.v[1]),
		Min(a.v[2], b.v[2]),
		Min(a.v[3], b.v[3]),
	)
}

// Vec4Max returns the component-wise maximum of a and b.
func Vec4Max[T Number](a, b Vec4[T]) Vec4[T] {
	if p, ok := lanes32(&a.v); ok {
		q, _ := lanes32(&b.v)
		simd.MaxF32x4(p, p, q)
		return a
	}
	if p, ok := lanes64(&a.v); ok {
		q, _ := lanes64(&b.v)
		simd.MaxF64x4(p, p, q)
		return a
	}
	return NewVec4(
		Max(a.v[0], b.v[0]),
		Max(a.v[1], b.v[1]),
		Max(a.v[2], b.v[2]),
		Max(a.v[3], b.v[3]),
	)
}

// Vec4Clamp constrains v component-wise to the box [lo, hi].
func Vec4Clamp[T Number](v, lo, hi Vec4[T]) Vec4[T] {
	return Vec4Max(lo, Vec4Min(v, hi))
}

// Vec4Lerp linearly interpolates between a and b per component.
func Vec4Lerp[T Number](a, b Vec4[T], t T) Vec4[T] {
	return NewVec4(
		Lerp(a.v[0], b.v[0], t),
		Lerp(a.v[1], b.v[1], t),
		Lerp(a.v[2], b.v[2], t),
		Lerp(a.v[3], b.v[3], t),
	)
}

// Vec4LerpClamped interpolates like Vec4Lerp with t constrained to [0, 1].
func Vec4LerpClamped[T Number](a, b Vec4[T], t T) Vec4[T] {
	return Vec4Lerp(a, b, Clamp(t, 0, 1))
}
