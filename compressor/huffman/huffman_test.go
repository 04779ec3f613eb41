package huffman

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := make([]byte, 64*1024)
	rng.Read(random)

	skewed := make([]byte, 20000)
	for i := range skewed {
		skewed[i] = byte(rng.ExpFloat64() * 4)
	}

	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	type testRow struct {
		name    string
		content []byte
	}

	testData := [...]testRow{
		{name: "example", content: []byte("aaaabbbcc")},
		{name: "one byte", content: []byte{0}},
		{name: "two symbols", content: []byte("abababababa")},
		{name: "text", content: []byte(strings.Repeat("It was the best of times, it was the worst of times.\n", 40))},
		{name: "all bytes", content: allBytes},
		{name: "random", content: random},
		{name: "skewed", content: skewed},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			encoded, err := Encode(row.content)
			require.NoError(t, err)

			h, err := ReadHeader(encoded)
			require.NoError(t, err)
			require.Equal(t, uint64(len(row.content)), h.Length)
			freq := CountFrequencies(row.content)
			require.Equal(t, uint64(freq.Distinct()), h.Distinct)

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, row.content, decoded)
		})
	}
}

func TestEncodeDecode_SingleSymbol(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 1000} {
		content := bytes.Repeat([]byte{'q'}, n)
		encoded, err := Encode(content)
		require.NoError(t, err)
		require.Len(t, encoded, 16+9+(n+7)/8)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, content, decoded)
	}
}

func TestEncode_Empty(t *testing.T) {
	out, err := Encode(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Nil(t, out)

	out, err = Encode([]byte{})
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Nil(t, out)
}

func TestEncode_Deterministic(t *testing.T) {
	content := []byte(strings.Repeat("abracadabra, ", 100))
	first, err := Encode(content)
	require.NoError(t, err)
	second, err := Encode(content)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDecode_Truncated(t *testing.T) {
	content := []byte(strings.Repeat("mississippi river ", 50))
	encoded, err := Encode(content)
	require.NoError(t, err)

	h, err := ReadHeader(encoded)
	require.NoError(t, err)
	for cut := 1; cut <= h.PayloadSize(len(encoded)); cut++ {
		_, err := Decode(encoded[:len(encoded)-cut])
		require.ErrorIs(t, err, ErrMalformedContainer, "cut %d bytes", cut)
	}

	_, err = Decode(encoded[:20])
	require.ErrorIs(t, err, ErrMalformedContainer)
}

func TestDecode_EmptyContainer(t *testing.T) {
	out, err := Decode(makeContainer(0, 0, nil))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecode_LengthBeyondPayload(t *testing.T) {
	_, err := Decode(makeContainer(1, 1<<40, [][2]uint64{{'x', 1 << 40}}, 0x00))
	require.ErrorIs(t, err, ErrMalformedContainer)
}

func TestEncodeDecode_Progress(t *testing.T) {
	type testRow struct {
		name string
		size int
	}

	testData := [...]testRow{
		{name: "tiny", size: 3},
		{name: "below one percent step", size: 99},
		{name: "large", size: 10000},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			content := []byte(strings.Repeat("xyz", row.size)[:row.size])

			var reports []Progress
			record := WithProgress(func(p Progress) {
				reports = append(reports, p)
			})

			encoded, err := Encode(content, record)
			require.NoError(t, err)
			requireProgress(t, reports, uint64(row.size))

			reports = nil
			decoded, err := Decode(encoded, record)
			require.NoError(t, err)
			require.Equal(t, content, decoded)
			requireProgress(t, reports, uint64(row.size))
		})
	}
}

func requireProgress(t *testing.T, reports []Progress, total uint64) {
	t.Helper()
	require.NotEmpty(t, reports)
	require.LessOrEqual(t, len(reports), 101)
	var last uint64
	for _, p := range reports {
		require.Equal(t, total, p.Total)
		require.Greater(t, p.Done, last)
		last = p.Done
	}
	final := reports[len(reports)-1]
	require.Equal(t, total, final.Done)
	require.Equal(t, 1.0, final.Fraction())
}

func TestProgress_Fraction(t *testing.T) {
	require.Equal(t, 0.25, Progress{Done: 1, Total: 4}.Fraction())
	require.Equal(t, 1.0, Progress{}.Fraction())
}
