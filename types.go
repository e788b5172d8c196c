package litematic

import (
	"sort"
	"strings"

	"github.com/voxelforge/litematic/internal/voxel"
)

// Re-export coordinate types from internal/voxel for the public API.
type (
	// Vec3 is a signed 3-component integer vector.
	Vec3 = voxel.Vec3

	// UVec3 is an unsigned 3-component integer vector, used for extents
	// and region-relative positions.
	UVec3 = voxel.UVec3
)

// AirName is the identifier of the default block state bound to palette id 0.
const AirName = "minecraft:air"

// Air returns the default block state bound to palette id 0 of every region.
func Air() BlockState {
	return BlockState{Name: AirName}
}

// BlockState is the labeled content of one grid position: a namespaced
// block identifier plus optional key-value properties.
//
// Two states are equal when their names and full property maps are equal;
// the palette deduplicates on that structural equality.
type BlockState struct {
	// Name is the namespaced block identifier (e.g. "minecraft:stone").
	Name string `nbt:"Name"`

	// Properties holds the block state properties, if any
	// (e.g. "facing" -> "north"). A nil map equals an empty one.
	Properties map[string]string `nbt:"Properties"`
}

// IsAir reports whether the state is the property-less default air state.
func (s BlockState) IsAir() bool {
	return s.Name == AirName && len(s.Properties) == 0
}

// String renders the state in the familiar bracketed form,
// e.g. "minecraft:oak_stairs[facing=north,half=top]".
func (s BlockState) String() string {
	if len(s.Properties) == 0 {
		return s.Name
	}
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s.Properties[k])
	}
	b.WriteByte(']')
	return b.String()
}

// TileEntity is an auxiliary record attached to a single position,
// e.g. chest contents or sign text.
//
// Pos is relative to the region's minimum corner. Data is the record's
// payload, carried as an open NBT compound; the storage core never
// interprets it beyond the position key.
type TileEntity struct {
	Pos  UVec3
	Data map[string]any
}

// Entity is a free-floating auxiliary record with no position key,
// carried verbatim as an open NBT compound.
type Entity map[string]any
