package bitpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBits(t *testing.T) {
	tests := []struct {
		paletteLen int
		want       int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{16, 4},
		{17, 5},
		{256, 8},
		{257, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bits(tt.paletteLen), "Bits(%d)", tt.paletteLen)
	}
}

func TestPackKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		ids  []uint32
		bits int
		want []int64
	}{
		{
			name: "empty",
			ids:  nil,
			bits: 2,
			want: []int64{},
		},
		{
			name: "single word",
			ids:  []uint32{0, 1, 2, 3},
			bits: 2,
			// 11 10 01 00 little-end-first
			want: []int64{0xE4},
		},
		{
			name: "full word",
			ids:  make([]uint32, 32), // 32 two-bit ids exactly fill a word
			bits: 2,
			want: []int64{0},
		},
		{
			name: "word boundary padding",
			// 22 three-bit ids: 21 fit in the first word (63 bits, top
			// bit zero-padded), the 22nd starts the second word.
			ids:  repeat(0b101, 22),
			bits: 3,
			want: []int64{0x5B6DB6DB6DB6DB6D, 0x5},
		},
		{
			name: "high bits masked",
			ids:  []uint32{0xFF},
			bits: 2,
			want: []int64{0x3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pack(tt.ids, tt.bits))
		})
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(0, 2))
	assert.Equal(t, 1, WordCount(32, 2))
	assert.Equal(t, 2, WordCount(33, 2))
	assert.Equal(t, 1, WordCount(21, 3))
	assert.Equal(t, 2, WordCount(22, 3))
	// Word-aligned packing wastes the 4 leftover bits of every 5-bit
	// word, so 64 ids need 6 words, not the 5 a dense stream would use.
	assert.Equal(t, 6, WordCount(64, 5))
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for bits := 2; bits <= 16; bits++ {
		for _, n := range []int{0, 1, 7, 64, 1000} {
			ids := make([]uint32, n)
			for i := range ids {
				ids[i] = uint32(rng.Intn(1 << bits))
			}

			words := Pack(ids, bits)
			require.Len(t, words, WordCount(n, bits))

			got, err := Unpack(words, bits, n)
			require.NoError(t, err, "bits=%d n=%d", bits, n)
			assert.Equal(t, ids, got, "bits=%d n=%d", bits, n)
		}
	}
}

func TestUnpackWordCountMismatch(t *testing.T) {
	tests := []struct {
		name  string
		words []int64
		bits  int
		n     int
	}{
		{"truncated", []int64{0}, 2, 64},
		{"padded", []int64{0, 0, 0}, 2, 64},
		{"empty for nonzero count", nil, 2, 1},
		{"nonempty for zero count", []int64{0}, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unpack(tt.words, tt.bits, tt.n)
			assert.ErrorIs(t, err, ErrWordCount)
		})
	}
}

func repeat(v uint32, n int) []uint32 {
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = v
	}
	return ids
}

func BenchmarkPack(b *testing.B) {
	ids := make([]uint32, 1<<16)
	rng := rand.New(rand.NewSource(1))
	for i := range ids {
		ids[i] = uint32(rng.Intn(1 << 5))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Pack(ids, 5)
	}
}

func BenchmarkUnpack(b *testing.B) {
	ids := make([]uint32, 1<<16)
	rng := rand.New(rand.NewSource(1))
	for i := range ids {
		ids[i] = uint32(rng.Intn(1 << 5))
	}
	words := Pack(ids, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Unpack(words, 5, len(ids)); err != nil {
			b.Fatal(err)
		}
	}
}
