package huffman

import (
	"bytes"
	"fmt"
)

// Encode compresses content into a container. Empty content yields
// ErrEmptyInput and no container.
func Encode(content []byte, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	if len(content) == 0 {
		return nil, ErrEmptyInput
	}

	freq := CountFrequencies(content)
	tree, err := BuildTree(&freq)
	if err != nil {
		return nil, err
	}
	codes := BuildCodeTable(tree)

	payloadSize := (codes.EncodedBits(&freq) + 7) / 8
	var out bytes.Buffer
	out.Grow(headerSize + recordSize*freq.Distinct() + int(payloadSize))
	if err := writeHeader(&out, &freq, uint64(len(content))); err != nil {
		return nil, err
	}
	progress := newProgressTracker(o.progress, uint64(len(content)))
	if err := packBits(&out, content, &codes, progress); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decode reconstructs the original bytes from a container produced by Encode.
func Decode(container []byte, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	h, err := ReadHeader(container)
	if err != nil {
		return nil, err
	}
	if h.Length == 0 {
		return []byte{}, nil
	}
	if h.Length > uint64(h.PayloadSize(len(container)))*8 {
		// Every symbol takes at least one bit.
		return nil, fmt.Errorf("%w: %d payload bytes cannot hold %d symbols", ErrMalformedContainer, h.PayloadSize(len(container)), h.Length)
	}

	tree, err := BuildTree(&h.Frequencies)
	if err != nil {
		return nil, err
	}
	progress := newProgressTracker(o.progress, h.Length)
	return unpackBits(container[h.PayloadOffset:], tree, h.Length, progress)
}
