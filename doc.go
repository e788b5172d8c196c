// Package litematic reads, builds, and writes litematica schematics.
//
// A schematic ([Litematic]) groups named [Region]s with descriptive
// metadata. Each region is a cuboid of block states addressed by absolute
// 3D coordinates between two arbitrary corners; storage cost in the
// serialized form scales with the number of distinct states, not the
// number of cells:
//   - Distinct states are deduplicated into a per-region palette in
//     first-seen order, with id 0 fixed to air.
//   - The per-cell id array is packed into 64-bit words at the minimum
//     bit width addressing the palette (never below 2), word-aligned so
//     an id's bits never straddle a word boundary.
//
// The file envelope is gzip-compressed big-endian NBT.
//
// # Quick Start
//
// Build a region and save it:
//
//	region := litematic.NewRegion("main", litematic.Vec3{}, litematic.Vec3{X: 15, Y: 15, Z: 15})
//	region.SetBlock(litematic.Vec3{X: 1, Y: 2, Z: 3}, litematic.BlockState{Name: "minecraft:stone"})
//	l := region.AsLitematic("a box of stone", "me")
//	err := l.WriteFile("box.litematic")
//
// Read one back and walk its cells:
//
//	l, err := litematic.ReadFile("box.litematic")
//	if err != nil {
//	    return err
//	}
//	for pos, state := range l.Regions[0].Blocks() {
//	    fmt.Println(pos, state)
//	}
//
// Regions perform no internal locking; a region is exclusively owned by
// its holder and concurrent mutation requires caller-side synchronization.
package litematic
