package voxel

// Box is an axis-aligned cuboid spanned by two inclusive corner points.
//
// The corners are kept exactly as given; Min, Max, and the index mapping
// canonicalize per axis, so NewBox(a, b) and NewBox(b, a) address the same
// cell set even though they serialize with different position/size signs.
type Box struct {
	c1, c2 Vec3
}

// NewBox returns the box spanned by the two corners, in either order.
func NewBox(c1, c2 Vec3) Box {
	return Box{c1: c1, c2: c2}
}

// Corner1 returns the first corner as given to NewBox.
func (b Box) Corner1() Vec3 { return b.c1 }

// Corner2 returns the second corner as given to NewBox.
func (b Box) Corner2() Vec3 { return b.c2 }

// Min returns the per-axis minimum corner.
func (b Box) Min() Vec3 {
	return Vec3{
		X: min(b.c1.X, b.c2.X),
		Y: min(b.c1.Y, b.c2.Y),
		Z: min(b.c1.Z, b.c2.Z),
	}
}

// Max returns the per-axis maximum corner.
func (b Box) Max() Vec3 {
	return Vec3{
		X: max(b.c1.X, b.c2.X),
		Y: max(b.c1.Y, b.c2.Y),
		Z: max(b.c1.Z, b.c2.Z),
	}
}

// Size returns the per-axis extent: |c1 - c2| + 1.
func (b Box) Size() UVec3 {
	return b.c1.SizeTo(b.c2)
}

// Volume returns the number of cells in the box.
func (b Box) Volume() uint32 {
	return b.Size().Volume()
}

// Index maps an absolute position inside the box to its linear offset.
//
// The linear order is x fastest, then z, then y slowest; this order is
// mandated by the block state serialization and must not change. Positions
// outside the box are a caller contract violation: the result is undefined
// but the call does not panic.
func (b Box) Index(pos Vec3) int {
	r := pos.Sub(b.Min()).Abs()
	s := b.Size()
	return int(r.Y*s.X*s.Z + r.Z*s.X + r.X)
}

// Pos maps a linear offset in [0, Volume()) back to its absolute position.
// Index and Pos are exact inverses over that range.
func (b Box) Pos(index int) Vec3 {
	i := uint32(index)
	s := b.Size()
	return b.Min().AddU(UVec3{
		X: i % s.X,
		Z: (i / s.X) % s.Z,
		Y: i / (s.X * s.Z),
	})
}
