package litematic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/litematic/internal/voxel"
)

func stone() BlockState { return BlockState{Name: "minecraft:stone"} }

func TestNewRegionDefaults(t *testing.T) {
	r := NewRegion("main", Vec3{X: -2, Y: 0, Z: 3}, Vec3{X: 1, Y: 4, Z: -1})

	assert.Equal(t, uint32(4*5*5), r.Volume())
	assert.Equal(t, 1, r.PaletteLen())
	assert.Equal(t, 0, r.TotalBlocks())

	// Every cell reads the default state.
	n := 0
	for _, state := range r.Blocks() {
		require.True(t, state.IsAir())
		n++
	}
	assert.Equal(t, int(r.Volume()), n)
}

func TestRegionGetSet(t *testing.T) {
	r := NewRegion("main", Vec3{}, Vec3{X: 2, Y: 2, Z: 2})
	pos := Vec3{X: 1, Y: 2, Z: 0}

	assert.True(t, r.GetBlock(pos).IsAir())

	r.SetBlock(pos, stone())
	assert.Equal(t, stone(), r.GetBlock(pos))
	assert.Equal(t, 1, r.TotalBlocks())
	assert.Equal(t, 2, r.PaletteLen())

	// Overwriting with air keeps the palette entry but clears the count.
	r.SetBlock(pos, Air())
	assert.Equal(t, 0, r.TotalBlocks())
	assert.Equal(t, 2, r.PaletteLen())
}

func TestRegionCornerOrderInvariance(t *testing.T) {
	a := Vec3{X: 1, Y: 1, Z: 1}
	b := Vec3{X: -1, Y: -1, Z: -1}

	fwd := NewRegion("fwd", a, b)
	rev := NewRegion("rev", b, a)

	require.Equal(t, fwd.Volume(), rev.Volume())
	assert.Equal(t, fwd.Min(), rev.Min())
	assert.Equal(t, fwd.Max(), rev.Max())

	// The same absolute position addresses the same cell in both.
	pos := Vec3{X: 0, Y: -1, Z: 1}
	fwd.SetBlock(pos, stone())
	rev.SetBlock(pos, stone())
	for i := 0; i < int(fwd.Volume()); i++ {
		p := voxel.NewBox(a, b).Pos(i)
		assert.Equal(t, fwd.GetBlock(p), rev.GetBlock(p))
	}
}

func TestRegionIterationScenario(t *testing.T) {
	r := NewRegion("main", Vec3{}, Vec3{X: 1, Y: 1, Z: 1})
	require.Equal(t, uint32(8), r.Volume())

	target := Vec3{X: 1, Y: 1, Z: 1}
	r.SetBlock(target, stone())

	var positions []Vec3
	var states []BlockState
	for pos, state := range r.Blocks() {
		positions = append(positions, pos)
		states = append(states, state)
	}

	require.Len(t, positions, 8)
	assert.Equal(t, target, positions[7], "the max corner is the last linear index")
	assert.Equal(t, stone(), states[7])
	for _, s := range states[:7] {
		assert.True(t, s.IsAir())
	}
	assert.Equal(t, 1, r.TotalBlocks())

	// The iterator restarts from the beginning.
	for pos := range r.Blocks() {
		assert.Equal(t, positions[0], pos)
		break
	}
}

func TestRegionOutOfBoxDoesNotCorrupt(t *testing.T) {
	r := NewRegion("main", Vec3{}, Vec3{X: 1, Y: 1, Z: 1})
	before := r.Volume()

	// Result is undefined, but the call must not panic and the region
	// must stay structurally intact.
	assert.NotPanics(t, func() {
		r.SetBlock(Vec3{X: 40, Y: 40, Z: 40}, stone())
		_ = r.GetBlock(Vec3{X: -5, Y: 0, Z: 0})
	})
	assert.Equal(t, before, r.Volume())
	n := 0
	for range r.Blocks() {
		n++
	}
	assert.Equal(t, int(before), n)
}

func TestTileEntities(t *testing.T) {
	r := NewRegion("main", Vec3{}, Vec3{X: 3, Y: 3, Z: 3})
	pos := UVec3{X: 1, Y: 2, Z: 3}

	_, ok := r.TileEntityAt(pos)
	assert.False(t, ok)

	r.SetTileEntity(TileEntity{Pos: pos, Data: map[string]any{"id": "minecraft:chest"}})
	te, ok := r.TileEntityAt(pos)
	require.True(t, ok)
	assert.Equal(t, "minecraft:chest", te.Data["id"])

	// Same position replaces instead of duplicating.
	r.SetTileEntity(TileEntity{Pos: pos, Data: map[string]any{"id": "minecraft:barrel"}})
	require.Len(t, r.TileEntities(), 1)
	te, _ = r.TileEntityAt(pos)
	assert.Equal(t, "minecraft:barrel", te.Data["id"])

	// Removing an absent record is a no-op.
	r.RemoveTileEntity(UVec3{X: 9, Y: 9, Z: 9})
	require.Len(t, r.TileEntities(), 1)

	r.RemoveTileEntity(pos)
	assert.Empty(t, r.TileEntities())
}

func TestRegionRawRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 Vec3
	}{
		{"origin box", Vec3{}, Vec3{X: 3, Y: 4, Z: 5}},
		{"reversed corners", Vec3{X: 3, Y: 4, Z: 5}, Vec3{}},
		{"negative corners", Vec3{X: -3, Y: -1, Z: -7}, Vec3{X: -1, Y: 2, Z: -4}},
		{"single cell", Vec3{X: 5, Y: 5, Z: 5}, Vec3{X: 5, Y: 5, Z: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegion("main", tt.c1, tt.c2)
			r.SetBlock(tt.c1, stone())
			r.SetBlock(tt.c2, BlockState{
				Name:       "minecraft:oak_log",
				Properties: map[string]string{"axis": "y"},
			})
			r.SetTileEntity(TileEntity{Pos: UVec3{X: 0, Y: 0, Z: 0}, Data: map[string]any{"id": "minecraft:chest"}})
			r.Entities = append(r.Entities, Entity{"id": "minecraft:pig"})
			r.PendingBlockTicks = append(r.PendingBlockTicks, map[string]any{"Block": "minecraft:sand", "Time": int64(4)})

			raw := r.ToRaw()
			assert.Equal(t, tt.c1, raw.Position)

			got, err := RegionFromRaw(raw, r.Name)
			require.NoError(t, err)

			if diff := cmp.Diff(r, got, cmp.AllowUnexported(Region{}, palette{}, voxel.Box{})); diff != "" {
				t.Errorf("region mismatch after round trip (-want +got):\n%s", diff)
			}
		})
	}
}

// The serialized size keeps the original corner order: a region built from
// a high corner toward a low one round-trips with negative size components.
func TestRegionRawNegativeSize(t *testing.T) {
	r := NewRegion("main", Vec3{X: 2, Y: 2, Z: 2}, Vec3{})
	raw := r.ToRaw()

	assert.Equal(t, Vec3{X: 2, Y: 2, Z: 2}, raw.Position)
	assert.Equal(t, Vec3{X: -3, Y: -3, Z: -3}, raw.Size)

	got, err := RegionFromRaw(raw, "main")
	require.NoError(t, err)
	assert.Equal(t, Vec3{X: 2, Y: 2, Z: 2}, got.Corner1())
	assert.Equal(t, Vec3{}, got.Corner2())
}

// Crossing a power-of-two palette boundary widens the packed array on the
// next serialization.
func TestRegionRepackOnPaletteGrowth(t *testing.T) {
	r := NewRegion("main", Vec3{}, Vec3{X: 63, Y: 0, Z: 0})

	// Palette: air + 3 = 4 entries, still 2 bits -> 64 ids in 2 words.
	for i := 0; i < 3; i++ {
		r.SetBlock(Vec3{X: int32(i)}, BlockState{Name: "minecraft:stone", Properties: map[string]string{"v": string(rune('a' + i))}})
	}
	require.Equal(t, 4, r.PaletteLen())
	assert.Len(t, r.ToRaw().BlockStates, 2)

	// A fifth distinct state pushes the width to 3 bits: 21 ids per
	// word, 64 ids -> 4 words.
	r.SetBlock(Vec3{X: 3}, stone())
	require.Equal(t, 5, r.PaletteLen())
	assert.Len(t, r.ToRaw().BlockStates, 4)
}

func TestRegionFromRawErrors(t *testing.T) {
	valid := NewRegion("main", Vec3{}, Vec3{X: 1, Y: 1, Z: 1}).ToRaw()

	t.Run("empty palette", func(t *testing.T) {
		raw := valid
		raw.BlockStatePalette = nil
		_, err := RegionFromRaw(raw, "main")
		assert.ErrorIs(t, err, ErrEmptyPalette)
	})

	t.Run("word count mismatch", func(t *testing.T) {
		raw := valid
		raw.BlockStates = append([]int64{}, raw.BlockStates...)
		raw.BlockStates = append(raw.BlockStates, 0)
		_, err := RegionFromRaw(raw, "main")
		assert.ErrorIs(t, err, ErrBlockStateCount)
	})

	t.Run("volume limit", func(t *testing.T) {
		_, err := RegionFromRaw(valid, "main", WithMaxRegionVolume(4))
		assert.ErrorIs(t, err, ErrRegionTooLarge)
	})

	t.Run("id past palette end", func(t *testing.T) {
		// One cell, one palette entry. Two bits per id still leave room
		// for ids 1..3, which no palette entry backs.
		raw := RawRegion{
			Position:          Vec3{},
			Size:              Vec3{X: 1, Y: 1, Z: 1},
			BlockStatePalette: []BlockState{Air()},
			BlockStates:       []int64{3},
		}
		_, err := RegionFromRaw(raw, "main")
		assert.ErrorIs(t, err, ErrBlockStateID)
	})
}
