package huffman

import (
	"math/bits"
)

// FrequencyTable holds the number of occurrences of every byte value. A zero
// entry means the symbol does not occur.
type FrequencyTable [256]uint64

// CountFrequencies returns the frequency table of content.
func CountFrequencies(content []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range content {
		freq[b]++
	}
	return freq
}

// Distinct returns the number of symbols with a nonzero count.
func (f *FrequencyTable) Distinct() int {
	n := 0
	for _, count := range f {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts. ok is false if the sum overflows.
func (f *FrequencyTable) Total() (total uint64, ok bool) {
	for _, count := range f {
		var carry uint64
		total, carry = bits.Add64(total, count, 0)
		if carry != 0 {
			return 0, false
		}
	}
	return total, true
}

// Symbols returns the present symbols in ascending order.
func (f *FrequencyTable) Symbols() []byte {
	out := make([]byte, 0, f.Distinct())
	for symbol, count := range f {
		if count != 0 {
			out = append(out, byte(symbol))
		}
	}
	return out
}
