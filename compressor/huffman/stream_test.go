package huffman

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	content := []byte(strings.Repeat("stream me through a buffer ", 64))

	var compressed bytes.Buffer
	w := NewWriter(&compressed)
	for chunk := content; len(chunk) > 0; {
		n := min(len(chunk), 100)
		written, err := w.Write(chunk[:n])
		require.NoError(t, err)
		require.Equal(t, n, written)
		chunk = chunk[n:]
	}
	require.Zero(t, compressed.Len())
	require.NoError(t, w.Close())

	expect, err := Encode(content)
	require.NoError(t, err)
	require.Equal(t, expect, compressed.Bytes())

	decompressed, err := io.ReadAll(NewReader(&compressed))
	require.NoError(t, err)
	require.Equal(t, content, decompressed)
}

func TestWriter_Empty(t *testing.T) {
	var compressed bytes.Buffer
	w := NewWriter(&compressed)
	require.ErrorIs(t, w.Close(), ErrEmptyInput)
	require.Zero(t, compressed.Len())

	_, err := w.Write([]byte("late"))
	require.Error(t, err)
}

func TestReader_Malformed(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3}))
	_, err := io.ReadAll(r)
	require.ErrorIs(t, err, ErrMalformedContainer)

	// The error sticks.
	_, err = r.Read(make([]byte, 8))
	require.ErrorIs(t, err, ErrMalformedContainer)
}
