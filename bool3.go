package linmath

// Bool3 is a three-component boolean mask, the companion to Vec3 for
// element types without arithmetic.
type Bool3 struct {
	X, Y, Z bool
}

// NewBool3 returns the mask (x, y, z).
func NewBool3(x, y, z bool) Bool3 {
	return Bool3{X: x, Y: y, Z: z}
}

// Any reports whether any component is set.
func (b Bool3) Any() bool { return b.X || b.Y || b.Z }

// All reports whether every component is set.
func (b Bool3) All() bool { return b.X && b.Y && b.Z }

// None reports whether no component is set.
func (b Bool3) None() bool { return !b.Any() }
