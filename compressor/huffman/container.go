package huffman

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	headerSize = 16
	recordSize = 9
)

// Header is the decoded fixed part of a container.
type Header struct {
	// Distinct is the number of frequency records.
	Distinct uint64

	// Length is the original, uncompressed length in bytes.
	Length uint64

	// Frequencies is rebuilt from the frequency records.
	Frequencies FrequencyTable

	// PayloadOffset is where the packed payload starts.
	PayloadOffset int
}

// PayloadSize returns the number of payload bytes in a container of size n.
func (h *Header) PayloadSize(n int) int {
	return n - h.PayloadOffset
}

// writeHeader writes the counts followed by one record per present symbol in
// ascending symbol order.
func writeHeader(w io.Writer, freq *FrequencyTable, length uint64) error {
	buf := make([]byte, headerSize, headerSize+recordSize*freq.Distinct())
	binary.LittleEndian.PutUint64(buf[0:8], uint64(freq.Distinct()))
	binary.LittleEndian.PutUint64(buf[8:16], length)
	for _, symbol := range freq.Symbols() {
		buf = append(buf, symbol)
		buf = binary.LittleEndian.AppendUint64(buf, freq[symbol])
	}
	_, err := w.Write(buf)
	return err
}

// ReadHeader parses and validates the header and frequency records of a
// container without decoding its payload.
func ReadHeader(container []byte) (Header, error) {
	var h Header
	if len(container) < headerSize {
		return h, fmt.Errorf("%w: %d bytes is shorter than the %d byte header", ErrMalformedContainer, len(container), headerSize)
	}
	h.Distinct = binary.LittleEndian.Uint64(container[0:8])
	h.Length = binary.LittleEndian.Uint64(container[8:16])

	if h.Distinct > uint64(len(h.Frequencies)) {
		return h, fmt.Errorf("%w: %d distinct symbols, at most %d possible", ErrMalformedContainer, h.Distinct, len(h.Frequencies))
	}
	rest := container[headerSize:]
	if uint64(len(rest)) < h.Distinct*recordSize {
		return h, fmt.Errorf("%w: header declares %d frequency records, only %d bytes follow", ErrMalformedContainer, h.Distinct, len(rest))
	}

	for i := uint64(0); i < h.Distinct; i++ {
		record := rest[i*recordSize : (i+1)*recordSize]
		symbol := record[0]
		count := binary.LittleEndian.Uint64(record[1:])
		if count == 0 {
			return h, fmt.Errorf("%w: symbol %#x has frequency 0", ErrInconsistentFrequencyTable, symbol)
		}
		if h.Frequencies[symbol] != 0 {
			return h, fmt.Errorf("%w: duplicate record for symbol %#x", ErrMalformedContainer, symbol)
		}
		h.Frequencies[symbol] = count
	}
	h.PayloadOffset = headerSize + int(h.Distinct)*recordSize

	if h.Distinct == 0 {
		if h.Length != 0 {
			return h, fmt.Errorf("%w: no frequency records for %d bytes", ErrInconsistentFrequencyTable, h.Length)
		}
		return h, nil
	}
	total, ok := h.Frequencies.Total()
	if !ok {
		return h, fmt.Errorf("%w: frequency sum overflows", ErrInconsistentFrequencyTable)
	}
	if total != h.Length {
		return h, fmt.Errorf("%w: frequencies sum to %d, original length is %d", ErrInconsistentFrequencyTable, total, h.Length)
	}
	return h, nil
}
