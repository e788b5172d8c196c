package litematic

// Raw NBT schema of the litematic format. These structs mirror the on-disk
// compound layout one-to-one and exist only at the serialization boundary;
// the in-memory Region and Litematic types are built from them on read and
// converted back on write.

// RawRegion is the serialized form of a single region, exchanged with the
// container and envelope layers.
//
// Position is one corner of the box and Size is signed per axis: a
// negative component means the box extends toward decreasing coordinates.
// BlockStates is the id array packed into 64-bit words (TAG_Long_Array) at
// the minimum bit width, never below 2, addressing BlockStatePalette.
type RawRegion struct {
	Position          Vec3             `nbt:"Position"`
	Size              Vec3             `nbt:"Size"`
	BlockStatePalette []BlockState     `nbt:"BlockStatePalette"`
	BlockStates       []int64          `nbt:"BlockStates"`
	TileEntities      []map[string]any `nbt:"TileEntities"`
	Entities          []Entity         `nbt:"Entities"`
	PendingBlockTicks []map[string]any `nbt:"PendingBlockTicks"`
	PendingFluidTicks []map[string]any `nbt:"PendingFluidTicks"`
}

// rawMetadata is the descriptive header of a schematic. The totals are
// derived from the regions on write and trusted (but unused) on read.
type rawMetadata struct {
	Name          string `nbt:"Name"`
	Description   string `nbt:"Description"`
	Author        string `nbt:"Author"`
	TimeCreated   int64  `nbt:"TimeCreated"`
	TimeModified  int64  `nbt:"TimeModified"`
	TotalBlocks   int32  `nbt:"TotalBlocks"`
	TotalVolume   int32  `nbt:"TotalVolume"`
	RegionCount   int32  `nbt:"RegionCount"`
	EnclosingSize Vec3   `nbt:"EnclosingSize"`
}

// rawLitematic is the root compound of a .litematic file.
type rawLitematic struct {
	Version              int32                `nbt:"Version"`
	SubVersion           int32                `nbt:"SubVersion"`
	MinecraftDataVersion int32                `nbt:"MinecraftDataVersion"`
	Metadata             rawMetadata          `nbt:"Metadata"`
	Regions              map[string]RawRegion `nbt:"Regions"`
}

// tileEntityToCompound flattens a tile entity back into its on-disk
// compound: the payload keys plus the region-relative x/y/z position tags.
func tileEntityToCompound(te TileEntity) map[string]any {
	c := make(map[string]any, len(te.Data)+3)
	for k, v := range te.Data {
		c[k] = v
	}
	c["x"] = int32(te.Pos.X)
	c["y"] = int32(te.Pos.Y)
	c["z"] = int32(te.Pos.Z)
	return c
}

// tileEntityFromCompound splits the position tags out of an on-disk tile
// entity compound; everything else stays in the opaque payload.
func tileEntityFromCompound(c map[string]any) TileEntity {
	te := TileEntity{Data: make(map[string]any, len(c))}
	for k, v := range c {
		switch k {
		case "x":
			te.Pos.X = uint32(compoundInt(v))
		case "y":
			te.Pos.Y = uint32(compoundInt(v))
		case "z":
			te.Pos.Z = uint32(compoundInt(v))
		default:
			te.Data[k] = v
		}
	}
	return te
}

// compoundInt reads an integer tag decoded into an interface value. The
// position tags are TAG_Int in well-formed files; the other widths show up
// in files written by lenient tooling.
func compoundInt(v any) int32 {
	switch n := v.(type) {
	case int32:
		return n
	case int64:
		return int32(n)
	case int16:
		return int32(n)
	case int8:
		return int32(n)
	default:
		return 0
	}
}
