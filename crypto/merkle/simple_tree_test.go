package merkle

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randSlices(total, sliceSize int) [][]byte {
	items := make([][]byte, total)
	for i := 0; i < total; i++ {
		items[i] = make([]byte, sliceSize)
		rand.Read(items[i])
	}
	return items
}

func TestSimpleHashFromByteSlices(t *testing.T) {
	// empty tree has no root
	assert.Nil(t, SimpleHashFromByteSlices(nil))
	assert.Nil(t, SimpleHashFromByteSlices([][]byte{}))

	// a single leaf is hashed with the leaf prefix
	item := []byte("single item")
	expected := sha256.Sum256(append([]byte{0}, item...))
	assert.Equal(t, expected[:], SimpleHashFromByteSlices([][]byte{item}))

	// two leaves combine under the inner prefix
	left := SimpleHashFromByteSlices([][]byte{[]byte("left")})
	right := SimpleHashFromByteSlices([][]byte{[]byte("right")})
	inner := sha256.Sum256(append([]byte{1}, append(left, right...)...))
	assert.Equal(t, inner[:],
		SimpleHashFromByteSlices([][]byte{[]byte("left"), []byte("right")}))
}

func TestSimpleHashDeterministicAndOrderSensitive(t *testing.T) {
	for _, total := range []int{1, 2, 3, 5, 8, 100} {
		items := randSlices(total, 32)

		root := SimpleHashFromByteSlices(items)
		require.Len(t, root, sha256.Size)
		require.Equal(t, root, SimpleHashFromByteSlices(items), "total=%d", total)

		if total > 1 {
			reversed := make([][]byte, total)
			for i := range items {
				reversed[total-1-i] = items[i]
			}
			require.NotEqual(t, root, SimpleHashFromByteSlices(reversed), "total=%d", total)
		}
	}
}

func TestGetSplitPoint(t *testing.T) {
	cases := []struct {
		length int
		want   int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 4},
		{10, 8},
		{20, 16},
		{100, 64},
		{255, 128},
		{256, 128},
		{257, 256},
	}
	for _, tc := range cases {
		assert.EqualValues(t, tc.want, getSplitPoint(tc.length), "getSplitPoint(%d)", tc.length)
	}
}
