package linmath

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec4Arithmetic(t *testing.T) {
	a := NewVec4[float32](1, 2, 3, 4)
	b := NewVec4[float32](4, -5, 6, 0.5)

	if got := a.Add(b); !got.Equal(NewVec4[float32](5, -3, 9, 4.5)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(NewVec4[float32](-3, 7, -3, 3.5)) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); !got.Equal(NewVec4[float32](4, -10, 18, 2)) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Scale(2); !got.Equal(NewVec4[float32](2, 4, 6, 8)) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Div(b); !got.Equal(NewVec4[float32](0.25, -0.4, 0.5, 8)) {
		t.Errorf("Div = %v", got)
	}
	if got := a.DivScalar(2); !got.Equal(NewVec4[float32](0.5, 1, 1.5, 2)) {
		t.Errorf("DivScalar = %v", got)
	}
	if !a.Equal(NewVec4[float32](1, 2, 3, 4)) {
		t.Errorf("receiver mutated: %v", a)
	}
}

func TestVec4DotLength(t *testing.T) {
	a := NewVec4[float64](1, 2, 2, 4)
	if got := a.Dot(a); got != 25 {
		t.Errorf("dot = %v, want 25", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("length = %v, want 5", got)
	}
	if got := a.Normalized().Length(); math32.Abs(float32(got-1)) > 1e-7 {
		t.Errorf("normalized length = %v, want 1", got)
	}

	var zero DVec4
	zero.Normalize()
	if !zero.Equal(NewVec4(0.0, 0.0, 0.0, 0.0)) {
		t.Errorf("normalize(zero) = %v, want zero", zero)
	}
}

func TestVec4Views(t *testing.T) {
	v := Vec4FromVec3(NewVec3[float32](1, 2, 3), 4)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 || v.W() != 4 {
		t.Errorf("components: %v", v)
	}
	if !v.XYZ().Equal(NewVec3[float32](1, 2, 3)) {
		t.Errorf("XYZ = %v", v.XYZ())
	}
	if got := Vec4Splat[float32](7); !got.Equal(NewVec4[float32](7, 7, 7, 7)) {
		t.Errorf("splat = %v", got)
	}
	if got := Vec4Lerp(NewVec4(0.0, 0.0, 0.0, 0.0), NewVec4(2.0, 4.0, 6.0, 8.0), 0.5); !got.Equal(NewVec4(1.0, 2.0, 3.0, 4.0)) {
		t.Errorf("lerp = %v", got)
	}
	if got := Vec4LerpClamped(NewVec4(0.0, 0.0, 0.0, 0.0), NewVec4(2.0, 4.0, 6.0, 8.0), 3.0); !got.Equal(NewVec4(2.0, 4.0, 6.0, 8.0)) {
		t.Errorf("lerpclamped = %v", got)
	}
}

func TestVec4MinMaxClamp(t *testing.T) {
	a := NewVec4[float32](1, 5, -3, 2)
	b := NewVec4[float32](2, 4, -6, 2.5)
	if got := Vec4Min(a, b); !got.Equal(NewVec4[float32](1, 4, -6, 2)) {
		t.Errorf("min = %v", got)
	}
	if got := Vec4Max(a, b); !got.Equal(NewVec4[float32](2, 5, -3, 2.5)) {
		t.Errorf("max = %v", got)
	}

	lo := NewVec4(0.0, 0.0, 0.0, 0.0)
	hi := NewVec4(1.0, 1.0, 1.0, 1.0)
	v := NewVec4(-0.5, 0.5, 2.0, 1.5)
	if got := Vec4Clamp(v, lo, hi); !got.Equal(NewVec4(0.0, 0.5, 1.0, 1.0)) {
		t.Errorf("clamp = %v", got)
	}
}
