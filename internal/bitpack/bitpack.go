// Package bitpack implements the word-aligned packed-integer codec used for
// litematic block state arrays.
//
// Identifiers are packed little-end-first into 64-bit words at a fixed bit
// width. An identifier's bits are never split across a word boundary: when
// the next identifier does not fit in the remaining bits of the current
// word, the word is flushed with its unused high bits zeroed and the
// identifier starts the next word. This differs from the dense bitstream
// packing used by vanilla chunk storage since 1.16, which the litematic
// format predates; the two layouts disagree whenever 64 is not a multiple
// of the bit width.
package bitpack

import (
	"errors"
	"fmt"
)

// MinBits is the smallest bit width ever used, regardless of palette size.
const MinBits = 2

// ErrWordCount is returned by Unpack when the word slice does not hold
// exactly the number of words Pack would have produced.
var ErrWordCount = errors.New("litematic: block state word count mismatch")

// Bits returns the minimum bit width addressing a palette of the given
// length: the smallest n >= MinBits with 1<<n >= paletteLen.
func Bits(paletteLen int) int {
	bits := MinBits
	for 1<<bits < paletteLen {
		bits++
	}
	return bits
}

// WordCount returns the number of 64-bit words Pack produces for n
// identifiers at the given bit width.
func WordCount(n, bits int) int {
	perWord := 64 / bits
	return (n + perWord - 1) / perWord
}

// Pack packs the identifiers into 64-bit words at the given bit width.
// Every identifier must be < 1<<bits; higher bits are masked off.
func Pack(ids []uint32, bits int) []int64 {
	mask := uint64(1)<<bits - 1
	words := make([]int64, 0, WordCount(len(ids), bits))

	var cur uint64
	shift := 0
	for _, id := range ids {
		if shift+bits > 64 {
			words = append(words, int64(cur))
			cur, shift = 0, 0
		}
		cur |= (uint64(id) & mask) << shift
		shift += bits
	}
	if shift > 0 {
		words = append(words, int64(cur))
	}
	return words
}

// Unpack reconstructs n identifiers from words packed at the given bit
// width. It is the exact inverse of Pack and fails with ErrWordCount when
// the word count does not match; it never silently truncates or pads.
func Unpack(words []int64, bits, n int) ([]uint32, error) {
	if want := WordCount(n, bits); len(words) != want {
		return nil, fmt.Errorf("%w: have %d words, want %d for %d entries at %d bits",
			ErrWordCount, len(words), want, n, bits)
	}

	perWord := 64 / bits
	mask := uint64(1)<<bits - 1
	ids := make([]uint32, n)
	for i := range ids {
		word := uint64(words[i/perWord])
		ids[i] = uint32(word >> (uint(i%perWord) * uint(bits)) & mask)
	}
	return ids, nil
}
