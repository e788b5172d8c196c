package litematic

import (
	"errors"

	"github.com/voxelforge/litematic/internal/bitpack"
)

// ErrBlockStateCount is returned when a serialized region's packed block
// state array does not hold exactly the number of 64-bit words implied by
// the region volume and palette size. Re-exported from internal/bitpack.
var ErrBlockStateCount = bitpack.ErrWordCount

// Sentinel errors for malformed serialized input. Hydration is
// all-or-nothing: a region that fails to decode is never partially
// constructed and nothing is substituted for the bad data.
var (
	// ErrEmptyPalette is returned when a serialized region carries no
	// block state palette. Even an all-air region has the one default
	// entry, so an empty palette leaves the packed ids meaningless.
	ErrEmptyPalette = errors.New("litematic: empty block state palette")

	// ErrRegionTooLarge is returned when a serialized region's volume
	// exceeds the configured limit (see WithMaxRegionVolume).
	ErrRegionTooLarge = errors.New("litematic: region exceeds volume limit")

	// ErrBlockStateID is returned when an unpacked block state id falls
	// outside the serialized palette. The packed array decodes cleanly at
	// the palette's bit width but references an entry that does not exist.
	ErrBlockStateID = errors.New("litematic: block state id out of palette range")
)
