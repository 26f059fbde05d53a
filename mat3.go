package linmath

// Mat3 is a column-major 3x3 matrix: element (row, col) lives at
// m[col*3+row], the conventional OpenGL layout.
type Mat3[T Float] [9]T

// Mat3Identity returns the identity matrix.
func Mat3Identity[T Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewMat3 builds a matrix from elements given in row-major reading order.
func NewMat3[T Float](
	a00, a01, a02,
	a10, a11, a12,
	a20, a21, a22 T,
) Mat3[T] {
	return Mat3[T]{
		a00, a10, a20,
		a01, a11, a21,
		a02, a12, a22,
	}
}

// At returns element (row, col).
func (m Mat3[T]) At(row, col int) T {
	return m[col*3+row]
}

// SetAt replaces element (row, col).
func (m *Mat3[T]) SetAt(row, col int, v T) {
	m[col*3+row] = v
}

// Trace returns the sum of the diagonal elements.
func (m Mat3[T]) Trace() T {
	return m[0] + m[4] + m[8]
}

// Transposed returns the transpose of m.
func (m Mat3[T]) Transposed() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Mul returns the matrix product m * o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*3+row] = m[0*3+row]*o[col*3+0] +
				m[1*3+row]*o[col*3+1] +
				m[2*3+row]*o[col*3+2]
		}
	}
	return out
}

// MulVec3 returns m * v for a column vector v.
func (m Mat3[T]) MulVec3(v Vec3[T]) Vec3[T] {
	return NewVec3(
		m[0]*v.X()+m[3]*v.Y()+m[6]*v.Z(),
		m[1]*v.X()+m[4]*v.Y()+m[7]*v.Z(),
		m[2]*v.X()+m[5]*v.Y()+m[8]*v.Z(),
	)
}

// Mat3FromQuat returns the rotation matrix equivalent to q, such that
// Mat3FromQuat(q).MulVec3(v) == q.Rotate(v) for unit q.
func Mat3FromQuat[T Float](q Quat[T]) Mat3[T] {
	x, y, z, w := q.X(), q.Y(), q.Z(), q.W()

	xx := x * x
	yy := y * y
	zz := z * z
	xy := x * y
	xz := x * z
	yz := y * z
	wx := w * x
	wy := w * y
	wz := w * z

	return NewMat3(
		1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy),
	)
}
