package linmath

import "fmt"

// Quat is a rotation quaternion: scalar part W plus vector part (X, Y, Z),
// stored as a Vec4 in (x, y, z, w) order. A quaternion used as a rotation
// should have unit length by convention; non-unit quaternions remain valid
// for intermediate arithmetic and nothing here enforces the convention.
type Quat[T Float] struct {
	v Vec4[T]
}

// NewQuat returns the quaternion with vector part (x, y, z) and scalar
// part w.
func NewQuat[T Float](x, y, z, w T) Quat[T] {
	return Quat[T]{v: NewVec4(x, y, z, w)}
}

// QuatFromVector returns the quaternion with the given vector and scalar
// parts.
func QuatFromVector[T Float](xyz Vec3[T], w T) Quat[T] {
	return Quat[T]{v: Vec4FromVec3(xyz, w)}
}

// QuatFromScalarVector is QuatFromVector with the scalar part first.
func QuatFromScalarVector[T Float](w T, xyz Vec3[T]) Quat[T] {
	return QuatFromVector(xyz, w)
}

// QuatFromVec4 reinterprets v as a quaternion.
func QuatFromVec4[T Float](v Vec4[T]) Quat[T] {
	return Quat[T]{v: v}
}

// QuatSplat returns the quaternion with all four components set to s.
func QuatSplat[T Float](s T) Quat[T] {
	return Quat[T]{v: Vec4Splat(s)}
}

// QuatIdentity returns the identity rotation (0, 0, 0, 1).
func QuatIdentity[T Float]() Quat[T] {
	return NewQuat[T](0, 0, 0, 1)
}

// X returns the first vector component.
func (q Quat[T]) X() T { return q.v.X() }

// Y returns the second vector component.
func (q Quat[T]) Y() T { return q.v.Y() }

// Z returns the third vector component.
func (q Quat[T]) Z() T { return q.v.Z() }

// W returns the scalar part.
func (q Quat[T]) W() T { return q.v.W() }

// Vector returns the vector part (x, y, z).
func (q Quat[T]) Vector() Vec3[T] { return q.v.XYZ() }

// Vec4 returns the raw four-component storage.
func (q Quat[T]) Vec4() Vec4[T] { return q.v }

// Set replaces all four components.
func (q *Quat[T]) Set(x, y, z, w T) {
	q.v.Set(x, y, z, w)
}

// SetVector replaces the vector part, keeping the scalar part.
func (q *Quat[T]) SetVector(xyz Vec3[T]) {
	q.v.Set(xyz.X(), xyz.Y(), xyz.Z(), q.v.W())
}

// Zero resets all components to zero. Note this is not the identity
// rotation.
func (q *Quat[T]) Zero() {
	q.v.Zero()
}

// Add returns the component-wise sum q + o.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{v: q.v.Add(o.v)}
}

// Sub returns the component-wise difference q - o.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return Quat[T]{v: q.v.Sub(o.v)}
}

// Scale returns q with every component multiplied by s.
func (q Quat[T]) Scale(s T) Quat[T] {
	return Quat[T]{v: q.v.Scale(s)}
}

// Mul returns the Hamilton product q*o. Composition is non-commutative:
// q.Mul(o) applies o first, then q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	a, b := q.Vector(), o.Vector()
	vec := a.Scale(o.W()).Add(b.Scale(q.W())).Add(a.Cross(b))
	return QuatFromVector(vec, q.W()*o.W()-a.Dot(b))
}

// Dot returns the four-component dot product of q and o.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.v.Dot(o.v)
}

// Length returns the four-component Euclidean norm of q.
func (q Quat[T]) Length() T {
	return q.v.Length()
}

// LengthSquared returns the squared norm of q.
func (q Quat[T]) LengthSquared() T {
	return q.v.LengthSquared()
}

// Normalize scales q to unit length in place. Unlike Vec3.Normalize there
// is no zero guard: a zero quaternion comes out as NaN per IEEE 754.
func (q *Quat[T]) Normalize() {
	scale := 1 / q.Length()
	q.v = q.v.Scale(scale)
}

// Normalized returns a unit-length copy of q.
func (q Quat[T]) Normalized() Quat[T] {
	q.Normalize()
	return q
}

// Conjugate returns q with the vector part negated. For unit quaternions
// the conjugate is the inverse rotation.
func (q Quat[T]) Conjugate() Quat[T] {
	return QuatFromVector(q.Vector().Scale(-1), q.W())
}

// Invert replaces q with its multiplicative inverse, conjugate divided by
// the squared length. A zero-length quaternion is left unmodified.
func (q *Quat[T]) Invert() {
	lsq := q.LengthSquared()
	if lsq != 0 {
		inv := 1 / lsq
		q.v = Vec4FromVec3(q.Vector().Scale(-inv), q.W()*inv)
	}
}

// Inverse returns the multiplicative inverse of q, or q unchanged when
// its length is zero.
func (q Quat[T]) Inverse() Quat[T] {
	q.Invert()
	return q
}

// ApproxEqual reports whether q and o describe nearly the same rotation:
// their dot product exceeds 0.999999. This is a similarity test, not
// component equality; at that threshold rotations closer than roughly
// 0.08 degrees are indistinguishable.
func (q Quat[T]) ApproxEqual(o Quat[T]) bool {
	return q.Dot(o) > 0.999999
}

// Rotate applies the rotation described by q to v.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	x2 := q.X() * 2
	y2 := q.Y() * 2
	z2 := q.Z() * 2
	xx := q.X() * x2
	yy := q.Y() * y2
	zz := q.Z() * z2
	xy := q.X() * y2
	xz := q.X() * z2
	yz := q.Y() * z2
	wx := q.W() * x2
	wy := q.W() * y2
	wz := q.W() * z2

	return NewVec3(
		(1-(yy+zz))*v.X()+(xy-wz)*v.Y()+(xz+wy)*v.Z(),
		(xy+wz)*v.X()+(1-(xx+zz))*v.Y()+(yz-wx)*v.Z(),
		(xz-wy)*v.X()+(yz+wx)*v.Y()+(1-(xx+yy))*v.Z(),
	)
}

// wrapAngles wraps each component of a degree triple into [0, 360).
func wrapAngles[T Float](angles Vec3[T]) Vec3[T] {
	return NewVec3(
		WrapAngle(angles.X()),
		WrapAngle(angles.Y()),
		WrapAngle(angles.Z()),
	)
}

// EulerAngles extracts the rotation as degrees about the X, Y and Z axes,
// the inverse of Euler. The gimbal-lock bands near +-90 degrees of X
// rotation get a dedicated branch; there the Z angle is reported as zero
// and the Y angle absorbs the remaining freedom. Results are wrapped into
// [0, 360).
func (q Quat[T]) EulerAngles() Vec3[T] {
	x, y, z, w := q.X(), q.Y(), q.Z(), q.W()

	// Scale the singularity test by the squared norm so non-unit input
	// behaves.
	unit := x*x + y*y + z*z + w*w
	test := x*w - y*z

	const singularity = 0.4995

	if test > singularity*unit {
		res := NewVec3(Pi/2, 2*Atan2(y, x), 0)
		return wrapAngles(res.Scale(Rad2Deg))
	}
	if test < -singularity*unit {
		res := NewVec3(-Pi/2, -2*Atan2(y, x), 0)
		return wrapAngles(res.Scale(Rad2Deg))
	}

	// Standard extraction on the permuted view (w, z, x, y).
	qx, qy, qz, qw := w, z, x, y
	res := NewVec3(
		Asin(2*(qx*qz-qw*qy)),
		Atan2(2*qx*qw+2*qy*qz, 1-2*(qz*qz+qw*qw)),
		Atan2(2*qx*qy+2*qz*qw, 1-2*(qy*qy+qz*qz)),
	)
	return wrapAngles(res.Scale(Rad2Deg))
}

// Euler builds a rotation from degrees about the X, Y and Z axes, applied
// in Z, then X, then Y order. It is the forward map inverted by
// EulerAngles up to the wrap convention and the singular bands.
func Euler[T Float](rotation Vec3[T]) Quat[T] {
	rotation = rotation.Scale(Deg2Rad)

	halfX := rotation.X() / 2
	halfY := rotation.Y() / 2
	halfZ := rotation.Z() / 2
	sx, cx := Sin(halfX), Cos(halfX)
	sy, cy := Sin(halfY), Cos(halfY)
	sz, cz := Sin(halfZ), Cos(halfZ)

	return NewQuat(
		cy*sx*cz+sy*cx*sz,
		sy*cx*cz-cy*sx*sz,
		cy*cx*sz-sy*sx*cz,
		cy*cx*cz+sy*sx*sz,
	)
}

// EulerXYZ is Euler with the three angles passed separately.
func EulerXYZ[T Float](x, y, z T) Quat[T] {
	return Euler(NewVec3(x, y, z))
}

// AxisAngle builds the rotation of angle radians about axis. A zero axis
// yields the identity, since the angle is meaningless without a
// direction. The axis need not be normalized; the result is defensively
// renormalized.
func AxisAngle[T Float](axis Vec3[T], angle T) Quat[T] {
	if axis.LengthSquared() == 0 {
		return QuatIdentity[T]()
	}

	axis.Normalize()
	half := angle / 2
	q := QuatFromVector(axis.Scale(Sin(half)), Cos(half))
	return q.Normalized()
}

// QuatFromMat3 extracts a rotation quaternion from an orthonormal 3x3
// rotation matrix using the trace-based branching algorithm, choosing the
// numerically dominant diagonal term to avoid catastrophic cancellation.
func QuatFromMat3[T Float](m Mat3[T]) Quat[T] {
	tr := m.Trace()
	switch {
	case tr > 0:
		s := Sqrt(tr+1) * 2
		return NewQuat(
			(m.At(2, 1)-m.At(1, 2))/s,
			(m.At(0, 2)-m.At(2, 0))/s,
			(m.At(1, 0)-m.At(0, 1))/s,
			s/4,
		)
	case m.At(0, 0) > m.At(1, 1) && m.At(0, 0) > m.At(2, 2):
		s := Sqrt(1+m.At(0, 0)-m.At(1, 1)-m.At(2, 2)) * 2
		return NewQuat(
			s/4,
			(m.At(0, 1)+m.At(1, 0))/s,
			(m.At(0, 2)+m.At(2, 0))/s,
			(m.At(2, 1)-m.At(1, 2))/s,
		)
	case m.At(1, 1) > m.At(2, 2):
		s := Sqrt(1+m.At(1, 1)-m.At(0, 0)-m.At(2, 2)) * 2
		return NewQuat(
			(m.At(0, 1)+m.At(1, 0))/s,
			s/4,
			(m.At(1, 2)+m.At(2, 1))/s,
			(m.At(0, 2)-m.At(2, 0))/s,
		)
	default:
		s := Sqrt(1+m.At(2, 2)-m.At(0, 0)-m.At(1, 1)) * 2
		return NewQuat(
			(m.At(0, 2)+m.At(2, 0))/s,
			(m.At(1, 2)+m.At(2, 1))/s,
			s/4,
			(m.At(1, 0)-m.At(0, 1))/s,
		)
	}
}

// Slerp interpolates from a to b along the shorter great-circle arc with
// constant angular velocity. Degenerate input degrades silently: a
// zero-length operand is replaced by the other one (or the identity when
// both are zero), nearly parallel input returns a, and a zero-length
// blend result falls back to the identity. The result is renormalized.
func Slerp[T Float](a, b Quat[T], t T) Quat[T] {
	if a.LengthSquared() == 0 {
		if b.LengthSquared() == 0 {
			return QuatIdentity[T]()
		}
		return b
	}
	if b.LengthSquared() == 0 {
		return a
	}

	cosHalfAngle := a.Dot(b)
	if cosHalfAngle >= 1 || cosHalfAngle <= -1 {
		return a
	}
	if cosHalfAngle < 0 {
		// Flip one operand to interpolate along the shorter arc.
		b = b.Scale(-1)
		cosHalfAngle = -cosHalfAngle
	}

	var blendA, blendB T
	if cosHalfAngle < 0.99 {
		halfAngle := Acos(cosHalfAngle)
		invSin := 1 / Sin(halfAngle)
		blendA = Sin(halfAngle*(1-t)) * invSin
		blendB = Sin(halfAngle*t) * invSin
	} else {
		// sin(halfAngle) is heading to zero, exact weights lose
		// precision; plain linear weights are indistinguishable here.
		blendA = 1 - t
		blendB = t
	}

	res := QuatFromVec4(a.v.Scale(blendA).Add(b.v.Scale(blendB)))
	if res.LengthSquared() > 0 {
		return res.Normalized()
	}
	return QuatIdentity[T]()
}

// String implements fmt.Stringer.
func (q Quat[T]) String() string {
	return fmt.Sprintf("%v, %v, %v, %v", q.X(), q.Y(), q.Z(), q.W())
}
