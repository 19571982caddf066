package reg

import "golang.org/x/exp/constraints"

// Field describes a bit-field inside a register.
type Field struct {
	Shift uint8
	Width uint8
}

// Max is the largest value the field can hold.
func (f Field) Max() uint32 {
	return uint32(uint64(1)<<f.Width - 1)
}

// Mask is the field's bits in register position.
func (f Field) Mask() uint32 {
	return f.Max() << f.Shift
}

// Get extracts the field from a register value.
func (f Field) Get(v uint32) uint32 {
	return (v >> f.Shift) & f.Max()
}

// Put replaces the field in v with x. Bits of x beyond the width are dropped.
func (f Field) Put(v, x uint32) uint32 {
	return v&^f.Mask() | (x&f.Max())<<f.Shift
}

// Pack shifts x into field position, reporting false when x doesn't fit.
func Pack[T constraints.Unsigned](f Field, x T) (uint32, bool) {
	if uint64(x) > uint64(f.Max()) {
		return 0, false
	}
	return uint32(x) << f.Shift, true
}

// Unpack extracts the field from v as T.
func Unpack[T constraints.Unsigned](f Field, v uint32) T {
	return T(f.Get(v))
}
