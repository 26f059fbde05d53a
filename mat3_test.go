package linmath

import (
	"testing"

	gscalar "gonum.org/v1/gonum/floats/scalar"
)

func TestMat3Layout(t *testing.T) {
	m := NewMat3(
		1.0, 2.0, 3.0,
		4.0, 5.0, 6.0,
		7.0, 8.0, 9.0,
	)
	if m.At(0, 1) != 2 || m.At(1, 0) != 4 || m.At(2, 2) != 9 {
		t.Errorf("row-major constructor mismatch: %v", m)
	}
	// Column-major storage: column 0 is the first three elements.
	if m[0] != 1 || m[1] != 4 || m[2] != 7 {
		t.Errorf("storage not column-major: %v", m)
	}
	if m.Trace() != 15 {
		t.Errorf("trace = %v, want 15", m.Trace())
	}

	m.SetAt(1, 2, -6)
	if m.At(1, 2) != -6 {
		t.Errorf("SetAt: %v", m)
	}
}

func TestMat3Transposed(t *testing.T) {
	m := NewMat3(
		1.0, 2.0, 3.0,
		4.0, 5.0, 6.0,
		7.0, 8.0, 9.0,
	)
	mt := m.Transposed()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if mt.At(row, col) != m.At(col, row) {
				t.Fatalf("transpose at (%d, %d): %v vs %v", row, col, mt.At(row, col), m.At(col, row))
			}
		}
	}
	if mt.Transposed() != m {
		t.Error("double transpose is not the original")
	}
}

func TestMat3MulIdentity(t *testing.T) {
	id := Mat3Identity[float64]()
	m := Mat3FromQuat(Euler(NewVec3(30.0, 45.0, 10.0)))
	if got := m.Mul(id); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := id.Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestMat3MulComposesRotations(t *testing.T) {
	qa := AxisAngle(NewVec3(0.0, 1.0, 0.0), 0.7)
	qb := AxisAngle(NewVec3(1.0, 0.0, 0.0), 0.3)

	composed := Mat3FromQuat(qa.Mul(qb))
	product := Mat3FromQuat(qa).Mul(Mat3FromQuat(qb))
	for i := range composed {
		if !gscalar.EqualWithinAbs(composed[i], product[i], 1e-12) {
			t.Fatalf("element %d: %v vs %v", i, composed[i], product[i])
		}
	}
}

func TestMat3MulVec3MatchesRotate(t *testing.T) {
	qs := []DQuat{
		Euler(NewVec3(30.0, 45.0, 10.0)),
		AxisAngle(NewVec3(1.0, -2.0, 0.5), 2.4),
		QuatIdentity[float64](),
	}
	v := NewVec3(1.0, -2.0, 3.0)
	for _, q := range qs {
		byMat := Mat3FromQuat(q).MulVec3(v)
		byQuat := q.Rotate(v)
		if Distance(byMat, byQuat) > 1e-12 {
			t.Errorf("matrix path %v != quaternion path %v for %v", byMat, byQuat, q)
		}
	}
}

// Each case lands in a different branch of the extraction: a small
// rotation keeps the trace positive, and a half turn about each axis
// makes the corresponding diagonal element dominate.
func TestQuatFromMat3RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		q    DQuat
	}{
		{"small", Euler(NewVec3(30.0, 45.0, 10.0))},
		{"half turn x", AxisAngle(NewVec3(1.0, 0.0, 0.0), Pi)},
		{"half turn y", AxisAngle(NewVec3(0.0, 1.0, 0.0), Pi)},
		{"half turn z", AxisAngle(NewVec3(0.0, 0.0, 1.0), Pi)},
		{"near half turn", AxisAngle(NewVec3(2.0, -1.0, 1.0), 3.1)},
		{"identity", QuatIdentity[float64]()},
	}
	for _, c := range cases {
		got := QuatFromMat3(Mat3FromQuat(c.q))
		// q and -q produce the same matrix, so compare rotations.
		if !sameRotation64(got, c.q) {
			t.Errorf("%s: round trip gave %v, want rotation of %v", c.name, got, c.q)
		}
		if l := got.Length(); !gscalar.EqualWithinAbs(l, 1, 1e-9) {
			t.Errorf("%s: extracted length = %v, want 1", c.name, l)
		}
	}
}

func TestQuatFromMat3Float32(t *testing.T) {
	q := AxisAngle(NewVec3[float32](0, 1, 0), Pi/2)
	got := QuatFromMat3(Mat3FromQuat(q))
	d := got.Dot(q)
	if d < 0 {
		d = -d
	}
	if d < 0.9999 {
		t.Errorf("float32 round trip gave %v, want rotation of %v", got, q)
	}
}
