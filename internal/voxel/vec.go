// Package voxel provides the coordinate types and box indexing used by the
// region block store.
//
// A box is addressed by two arbitrary corner points; either corner may carry
// the larger or smaller coordinate on any axis and coordinates may be
// negative. All cell storage is a single flat array addressed by a linear
// offset in x-fastest, then z, then y order, matching the on-disk layout of
// the litematic format.
package voxel

import "fmt"

// Vec3 is a signed 3-component integer vector.
//
// The NBT tags match the lowercase x/y/z compound used by the litematic
// format for positions and sizes.
type Vec3 struct {
	X int32 `nbt:"x"`
	Y int32 `nbt:"y"`
	Z int32 `nbt:"z"`
}

// UVec3 is an unsigned 3-component integer vector, used for extents and
// box-relative offsets.
type UVec3 struct {
	X uint32 `nbt:"x"`
	Y uint32 `nbt:"y"`
	Z uint32 `nbt:"z"`
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// AddU returns the component-wise sum of v and an unsigned vector.
func (v Vec3) AddU(o UVec3) Vec3 {
	return Vec3{v.X + int32(o.X), v.Y + int32(o.Y), v.Z + int32(o.Z)}
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Signum returns the per-axis sign of v: -1, 0, or 1.
func (v Vec3) Signum() Vec3 {
	return Vec3{signum(v.X), signum(v.Y), signum(v.Z)}
}

// Abs returns the per-axis absolute value of v as an unsigned vector.
func (v Vec3) Abs() UVec3 {
	return UVec3{absu(v.X), absu(v.Y), absu(v.Z)}
}

// SizeTo returns the extent of the box spanned by v and o: per axis
// |v - o| + 1. Both corners are inclusive, so a degenerate box has extent 1.
func (v Vec3) SizeTo(o Vec3) UVec3 {
	return UVec3{
		X: absu(v.X-o.X) + 1,
		Y: absu(v.Y-o.Y) + 1,
		Z: absu(v.Z-o.Z) + 1,
	}
}

// VolumeTo returns the volume of the box spanned by v and o.
func (v Vec3) VolumeTo(o Vec3) uint32 {
	return v.SizeTo(o).Volume()
}

// Volume returns the product of the per-axis absolute values.
func (v Vec3) Volume() uint32 {
	return absu(v.X) * absu(v.Y) * absu(v.Z)
}

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Volume returns the product of the components.
func (u UVec3) Volume() uint32 {
	return u.X * u.Y * u.Z
}

// String implements fmt.Stringer.
func (u UVec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", u.X, u.Y, u.Z)
}

func signum(n int32) int32 {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func absu(n int32) uint32 {
	if n < 0 {
		return uint32(-int64(n))
	}
	return uint32(n)
}
