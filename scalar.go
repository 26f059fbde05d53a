// Package linmath provides small fixed-size linear algebra types for
// graphics and game code: 3- and 4-component vectors, quaternions and
// 3x3 matrices, generic over their element type, with a vectorized fast
// path for float32 and float64 on amd64.
package linmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the constraint for element types with IEEE 754 semantics.
type Float interface {
	float32 | float64
}

// Signed is the constraint for signed integer element types.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is the constraint for unsigned integer element types.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Integer is the constraint for integer element types.
type Integer interface {
	Signed | Unsigned
}

// Number is the constraint for all element types usable with Vec3 and Vec4.
type Number interface {
	Integer | Float
}

const (
	// Pi is the circle constant.
	Pi = math.Pi

	// Epsilon is the threshold under which a vector magnitude is treated
	// as zero by Normalize.
	Epsilon = 1e-6

	// Deg2Rad converts degrees to radians when multiplied.
	Deg2Rad = Pi / 180

	// Rad2Deg converts radians to degrees when multiplied.
	Rad2Deg = 180 / Pi
)

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of x (radians).
func Cos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

// Asin returns the arcsine of x in radians.
func Asin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Asin(v))
	}
	return T(math.Asin(float64(x)))
}

// Acos returns the arccosine of x in radians.
func Acos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Acos(v))
	}
	return T(math.Acos(float64(x)))
}

// Atan2 returns the arctangent of y/x in radians, using the signs of both
// arguments to pick the quadrant.
func Atan2[T Float](y, x T) T {
	if yy, ok := any(y).(float32); ok {
		return T(math32.Atan2(yy, any(x).(float32)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Floor returns the largest integer value less than or equal to x.
func Floor[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Floor(v))
	}
	return T(math.Floor(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp constrains v to the range [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}

// Lerp linearly interpolates between a and b by t.
func Lerp[T Number](a, b, t T) T {
	return a + (b-a)*t
}

// LerpClamped linearly interpolates between a and b with t constrained
// to [0, 1].
func LerpClamped[T Number](a, b, t T) T {
	return Lerp(a, b, Clamp(t, 0, 1))
}

// WrapAngle wraps an angle in degrees into [0, 360).
func WrapAngle[T Float](deg T) T {
	return deg - 360*Floor(deg/360)
}

// sqrtNumber is Sqrt widened to integer element types. Integer results
// are truncated.
func sqrtNumber[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}
