package linmath

import (
	"fmt"

	"linmath/internal/simd"
)

// Vec3 is a three-component vector. Components are stored in a four-slot
// backing array whose last slot is padding; the padding slot is always
// zero and never semantically meaningful. float32 and float64 vectors
// take the vectorized kernel path, every other element type runs the
// scalar fallback.
type Vec3[T Number] struct {
	v [4]T
}

// NewVec3 returns the vector (x, y, z).
func NewVec3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{v: [4]T{x, y, z, 0}}
}

// Vec3Splat returns the vector (s, s, s).
func Vec3Splat[T Number](s T) Vec3[T] {
	return Vec3[T]{v: [4]T{s, s, s, 0}}
}

// lanes32 reports whether the backing array holds float32 lanes.
func lanes32[T Number](p *[4]T) (*[4]float32, bool) {
	a, ok := any(p).(*[4]float32)
	return a, ok
}

// lanes64 reports whether the backing array holds float64 lanes.
func lanes64[T Number](p *[4]T) (*[4]float64, bool) {
	a, ok := any(p).(*[4]float64)
	return a, ok
}

// X returns the first component.
func (v Vec3[T]) X() T { return v.v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v.v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v.v[2] }

// Elem returns component i, with i in [0, 2].
func (v Vec3[T]) Elem(i int) T {
	if i < 0 || i > 2 {
		panic("linmath: Vec3 component index out of range")
	}
	return v.v[i]
}

// Set replaces all three components.
func (v *Vec3[T]) Set(x, y, z T) {
	v.v[0], v.v[1], v.v[2] = x, y, z
}

// SetX replaces the first component.
func (v *Vec3[T]) SetX(x T) { v.v[0] = x }

// SetY replaces the second component.
func (v *Vec3[T]) SetY(y T) { v.v[1] = y }

// SetZ replaces the third component.
func (v *Vec3[T]) SetZ(z T) { v.v[2] = z }

// Zero resets the vector to (0, 0, 0).
func (v *Vec3[T]) Zero() {
	v.v = [4]T{}
}

// Add returns v + o component-wise.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
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
	v.v[0] += o.v[0]
	v.v[1] += o.v[1]
	v.v[2] += o.v[2]
	return v
}

// Sub returns v - o component-wise.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
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
	v.v[0] -= o.v[0]
	v.v[1] -= o.v[1]
	v.v[2] -= o.v[2]
	return v
}

// Mul returns the component-wise product of v and o.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
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
	v.v[0] *= o.v[0]
	v.v[1] *= o.v[1]
	v.v[2] *= o.v[2]
	return v
}

// Div returns the component-wise quotient of v and o. For float element
// types division by zero follows IEEE 754 semantics.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	if a, ok := lanes32(&v.v); ok {
		b, _ := lanes32(&o.v)
		simd.DivF32x4(a, a, b)
		v.v[3] = 0 // the kernel leaves 0/0 in the padding lane
		return v
	}
	if a, ok := lanes64(&v.v); ok {
		b, _ := lanes64(&o.v)
		simd.DivF64x4(a, a, b)
		v.v[3] = 0
		return v
	}
	v.v[0] /= o.v[0]
	v.v[1] /= o.v[1]
	v.v[2] /= o.v[2]
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	if a, ok := lanes32(&v.v); ok {
		simd.ScaleF32x4(a, a, any(s).(float32))
		return v
	}
	if a, ok := lanes64(&v.v); ok {
		simd.ScaleF64x4(a, a, any(s).(float64))
		return v
	}
	v.v[0] *= s
	v.v[1] *= s
	v.v[2] *= s
	return v
}

// DivScalar returns v with every component divided by s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	v.v[0] /= s
	v.v[1] /= s
	v.v[2] /= s
	return v
}

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	if a, ok := lanes32(&v.v); ok {
		b, _ := lanes32(&o.v)
		return T(simd.DotF32x4(a, b))
	}
	if a, ok := lanes64(&v.v); ok {
		b, _ := lanes64(&o.v)
		return T(simd.DotF64x4(a, b))
	}
	return v.v[0]*o.v[0] + v.v[1]*o.v[1] + v.v[2]*o.v[2]
}

// Cross returns the right-handed cross product of v and o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return NewVec3(
		v.v[1]*o.v[2]-v.v[2]*o.v[1],
		v.v[2]*o.v[0]-v.v[0]*o.v[2],
		v.v[0]*o.v[1]-v.v[1]*o.v[0],
	)
}

// LengthSquared returns the squared Euclidean norm of v.
func (v Vec3[T]) LengthSquared() T {
	return v.v[0]*v.v[0] + v.v[1]*v.v[1] + v.v[2]*v.v[2]
}

// Length returns the Euclidean norm of v.
func (v Vec3[T]) Length() T {
	return sqrtNumber(v.LengthSquared())
}

// Normalize scales v to unit length in place. A vector whose magnitude
// does not exceed Epsilon is reset to zero instead, so near-zero input
// degrades to the zero vector rather than producing Inf or NaN.
func (v *Vec3[T]) Normalize() {
	mag := v.Length()
	if float64(mag) > Epsilon {
		*v = v.DivScalar(mag)
	} else {
		v.Zero()
	}
}

// Normalized returns a unit-length copy of v, leaving v untouched.
func (v Vec3[T]) Normalized() Vec3[T] {
	v.Normalize()
	return v
}

// Equal reports exact component equality. This is IEEE equality for
// float element types; rotation-style tolerant comparison belongs to
// Quat.ApproxEqual, not here.
func (v Vec3[T]) Equal(o Vec3[T]) bool {
	return v.v == o.v
}

// Any reports whether any component is nonzero.
func (v Vec3[T]) Any() bool {
	return v.v[0] != 0 || v.v[1] != 0 || v.v[2] != 0
}

// All reports whether every component is nonzero.
func (v Vec3[T]) All() bool {
	return v.v[0] != 0 && v.v[1] != 0 && v.v[2] != 0
}

// None reports whether every component is zero.
func (v Vec3[T]) None() bool {
	return !v.Any()
}

// String implements fmt.Stringer.
func (v Vec3[T]) String() string {
	return fmt.Sprintf("%v, %v, %v", v.v[0], v.v[1], v.v[2])
}

// Vec3Min returns the component-wise minimum of a and b.
func Vec3Min[T Number](a, b Vec3[T]) Vec3[T] {
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
	return NewVec3(
		Min(a.v[0], b.v[0]),
		Min(a.v[1], b.v[1]),
		Min(a.v[2], b.v[2]),
	)
}

// Vec3Max returns the component-wise maximum of a and b.
func Vec3Max[T Number](a, b Vec3[T]) Vec3[T] {
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
	return NewVec3(
		Max(a.v[0], b.v[0]),
		Max(a.v[1], b.v[1]),
		Max(a.v[2], b.v[2]),
	)
}

// Vec3Clamp constrains v component-wise to the box [lo, hi].
func Vec3Clamp[T Number](v, lo, hi Vec3[T]) Vec3[T] {
	return Vec3Max(lo, Vec3Min(v, hi))
}

// Vec3Lerp linearly interpolates between a and b per component.
func Vec3Lerp[T Number](a, b Vec3[T], t T) Vec3[T] {
	return NewVec3(
		Lerp(a.v[0], b.v[0], t),
		Lerp(a.v[1], b.v[1], t),
		Lerp(a.v[2], b.v[2], t),
	)
}

// Vec3LerpClamped interpolates like Vec3Lerp with t constrained to [0, 1].
func Vec3LerpClamped[T Number](a, b Vec3[T], t T) Vec3[T] {
	return Vec3Lerp(a, b, Clamp(t, 0, 1))
}

// Distance returns the length of b - a.
func Distance[T Number](a, b Vec3[T]) T {
	return b.Sub(a).Length()
}

// Project returns the projection of a onto b. Projecting onto the zero
// vector is not guarded: for float element types the result propagates
// NaN per IEEE 754.
func Project[T Number](a, b Vec3[T]) Vec3[T] {
	return b.Scale(a.Dot(b) / b.Dot(b))
}
