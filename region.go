package litematic

import (
	"fmt"
	"iter"

	"github.com/voxelforge/litematic/internal/bitpack"
	"github.com/voxelforge/litematic/internal/voxel"
)

// Region is a rectangular cuboid of block states addressed by absolute
// coordinates, together with its auxiliary records.
//
// Storage is a flat array of palette ids over the canonical bounding box of
// the two corners; the palette grows as distinct states are set and the
// serialized form packs the id array at the minimum bit width addressing
// the palette. A Region is exclusively owned by its holder: it performs no
// internal locking and its palette and cell array are never exposed for
// external mutation.
type Region struct {
	// Name identifies the region inside its schematic.
	Name string

	// Entities holds the region's free-floating auxiliary records.
	Entities []Entity

	// PendingBlockTicks and PendingFluidTicks are carried verbatim
	// through serialization and never interpreted.
	PendingBlockTicks []map[string]any
	PendingFluidTicks []map[string]any

	box          voxel.Box
	palette      *palette
	blocks       []uint32
	tileEntities []TileEntity
}

// NewRegion creates an all-air region spanning the box between the two
// corners. The corners may come in any order and carry negative
// coordinates; both are inclusive.
func NewRegion(name string, corner1, corner2 Vec3) *Region {
	box := voxel.NewBox(corner1, corner2)
	return &Region{
		Name:    name,
		box:     box,
		palette: newPalette(),
		blocks:  make([]uint32, box.Volume()),
	}
}

// Corner1 returns the first corner as given at construction.
func (r *Region) Corner1() Vec3 { return r.box.Corner1() }

// Corner2 returns the second corner as given at construction.
func (r *Region) Corner2() Vec3 { return r.box.Corner2() }

// Min returns the per-axis minimum corner of the region.
func (r *Region) Min() Vec3 { return r.box.Min() }

// Max returns the per-axis maximum corner of the region.
func (r *Region) Max() Vec3 { return r.box.Max() }

// Size returns the per-axis extent of the region.
func (r *Region) Size() UVec3 { return r.box.Size() }

// Volume returns the number of cells in the region.
func (r *Region) Volume() uint32 { return r.box.Volume() }

// GetBlock returns the block state at an absolute position.
//
// The position must lie inside the region; out-of-box positions are a
// caller contract violation with an undefined (but non-corrupting) result.
// The returned state shares its property map with the palette and must not
// be modified.
func (r *Region) GetBlock(pos Vec3) BlockState {
	return r.palette.lookup(r.blocks[r.clampIndex(pos)])
}

// SetBlock sets the block state at an absolute position, adding the state
// to the palette if no structurally equal entry exists yet.
//
// The position contract matches GetBlock. The state's property map is
// retained by the palette; callers must not modify it afterwards.
func (r *Region) SetBlock(pos Vec3, state BlockState) {
	id := r.palette.ensure(state)
	r.blocks[r.clampIndex(pos)] = id
}

// clampIndex keeps an out-of-contract position from corrupting or crashing
// the store: the offset is folded into the valid range. In-box positions
// map through unchanged.
func (r *Region) clampIndex(pos Vec3) int {
	i := r.box.Index(pos)
	if i < 0 || i >= len(r.blocks) {
		i = ((i % len(r.blocks)) + len(r.blocks)) % len(r.blocks)
	}
	return i
}

// TotalBlocks returns the number of cells holding a non-default state
// (palette id 0, air in a region built by NewRegion).
func (r *Region) TotalBlocks() int {
	n := 0
	for _, id := range r.blocks {
		if id != 0 {
			n++
		}
	}
	return n
}

// Blocks returns an iterator over every (position, state) pair in the
// region in ascending linear-index order: x fastest, then z, then y. The
// sequence is lazy, restartable, and yields exactly Volume() pairs.
func (r *Region) Blocks() iter.Seq2[Vec3, BlockState] {
	return func(yield func(Vec3, BlockState) bool) {
		for i, id := range r.blocks {
			if !yield(r.box.Pos(i), r.palette.lookup(id)) {
				return
			}
		}
	}
}

// PaletteLen returns the number of distinct block states accumulated so
// far, including the default entry.
func (r *Region) PaletteLen() int {
	return r.palette.len()
}

// TileEntityAt returns the tile entity at a region-relative position.
func (r *Region) TileEntityAt(pos UVec3) (TileEntity, bool) {
	for _, te := range r.tileEntities {
		if te.Pos == pos {
			return te, true
		}
	}
	return TileEntity{}, false
}

// SetTileEntity adds a tile entity, replacing any existing record at the
// same position. Positions stay unique.
func (r *Region) SetTileEntity(te TileEntity) {
	for i := range r.tileEntities {
		if r.tileEntities[i].Pos == te.Pos {
			r.tileEntities[i] = te
			return
		}
	}
	r.tileEntities = append(r.tileEntities, te)
}

// RemoveTileEntity removes the tile entity at a region-relative position.
// It is a no-op when no record exists there.
func (r *Region) RemoveTileEntity(pos UVec3) {
	for i := range r.tileEntities {
		if r.tileEntities[i].Pos == pos {
			r.tileEntities = append(r.tileEntities[:i], r.tileEntities[i+1:]...)
			return
		}
	}
}

// TileEntities returns the tile entities in insertion order. The slice is
// shared with the region and must not be modified.
func (r *Region) TileEntities() []TileEntity {
	return r.tileEntities
}

// AsLitematic wraps the region in a single-region schematic named after
// the region.
func (r *Region) AsLitematic(description, author string) *Litematic {
	l := New(r.Name, description, author)
	l.Regions = append(l.Regions, r)
	return l
}

// ToRaw converts the region to its serialized record. Position and size
// keep the original corner order: a negative size component means the box
// extends toward decreasing coordinates from Position. The packed id array
// is recomputed from scratch at the minimum bit width for the current
// palette, so a palette that crossed a power-of-two boundary since the
// last serialization simply packs wider.
func (r *Region) ToRaw() RawRegion {
	s := r.Corner2().Sub(r.Corner1())

	raw := RawRegion{
		Position:          r.Corner1(),
		Size:              s.Add(s.Signum()),
		BlockStatePalette: r.palette.states,
		BlockStates:       bitpack.Pack(r.blocks, bitpack.Bits(r.palette.len())),
		TileEntities:      make([]map[string]any, 0, len(r.tileEntities)),
		Entities:          r.Entities,
		PendingBlockTicks: r.PendingBlockTicks,
		PendingFluidTicks: r.PendingFluidTicks,
	}
	for _, te := range r.tileEntities {
		raw.TileEntities = append(raw.TileEntities, tileEntityToCompound(te))
	}
	return raw
}

// RegionFromRaw hydrates a region from its serialized record. Palette and
// auxiliary records are copied verbatim; the packed id array is unpacked
// at the bit width implied by the incoming palette length. Malformed
// input fails the whole hydration; nothing is truncated, padded, or
// substituted.
func RegionFromRaw(raw RawRegion, name string, opts ...ReadOption) (*Region, error) {
	cfg := defaultReadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return regionFromNBT(name, raw, cfg.maxRegionVolume)
}

func regionFromNBT(name string, raw RawRegion, maxVolume uint32) (*Region, error) {
	if len(raw.BlockStatePalette) == 0 {
		return nil, fmt.Errorf("region %q: %w", name, ErrEmptyPalette)
	}

	corner1 := raw.Position
	corner2 := raw.Position.Add(raw.Size).Sub(raw.Size.Signum())
	box := voxel.NewBox(corner1, corner2)

	volume := box.Volume()
	if maxVolume > 0 && volume > maxVolume {
		return nil, fmt.Errorf("region %q: %w: volume %d > %d", name, ErrRegionTooLarge, volume, maxVolume)
	}

	bits := bitpack.Bits(len(raw.BlockStatePalette))
	blocks, err := bitpack.Unpack(raw.BlockStates, bits, int(volume))
	if err != nil {
		return nil, fmt.Errorf("region %q: %w", name, err)
	}
	// The bit width rounds the palette length up to a power of two, so a
	// well-formed word array can still encode ids past the palette end.
	for i, id := range blocks {
		if id >= uint32(len(raw.BlockStatePalette)) {
			return nil, fmt.Errorf("region %q: %w: id %d at index %d, palette length %d",
				name, ErrBlockStateID, id, i, len(raw.BlockStatePalette))
		}
	}

	r := &Region{
		Name:              name,
		Entities:          raw.Entities,
		PendingBlockTicks: raw.PendingBlockTicks,
		PendingFluidTicks: raw.PendingFluidTicks,
		box:               box,
		palette:           paletteFrom(raw.BlockStatePalette),
		blocks:            blocks,
	}
	r.tileEntities = make([]TileEntity, 0, len(raw.TileEntities))
	for _, c := range raw.TileEntities {
		r.tileEntities = append(r.tileEntities, tileEntityFromCompound(c))
	}
	return r, nil
}
