package huffman

import "errors"

var (
	// ErrEmptyInput is returned by Encode when there is nothing to encode.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrMalformedContainer is returned when a container is truncated or its
	// header does not describe the bytes that follow it.
	ErrMalformedContainer = errors.New("huffman: malformed container")

	// ErrInconsistentFrequencyTable is returned when the stored frequency
	// records cannot have produced the stored original length.
	ErrInconsistentFrequencyTable = errors.New("huffman: inconsistent frequency table")
)
