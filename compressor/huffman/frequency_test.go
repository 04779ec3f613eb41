package huffman

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	freq := CountFrequencies([]byte("aaaabbbcc"))
	require.Equal(t, uint64(4), freq['a'])
	require.Equal(t, uint64(3), freq['b'])
	require.Equal(t, uint64(2), freq['c'])
	require.Equal(t, 3, freq.Distinct())
	require.Equal(t, []byte("abc"), freq.Symbols())

	total, ok := freq.Total()
	require.True(t, ok)
	require.Equal(t, uint64(9), total)
}

func TestCountFrequencies_Empty(t *testing.T) {
	freq := CountFrequencies(nil)
	require.Zero(t, freq.Distinct())
	require.Empty(t, freq.Symbols())

	total, ok := freq.Total()
	require.True(t, ok)
	require.Zero(t, total)
}

func TestFrequencyTable_TotalOverflow(t *testing.T) {
	var freq FrequencyTable
	freq[0] = math.MaxUint64
	freq[1] = 1
	_, ok := freq.Total()
	require.False(t, ok)
}
