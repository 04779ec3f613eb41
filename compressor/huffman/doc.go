// Package huffman implements a static Huffman codec over byte symbols.
//
// Encode counts how often each byte value occurs, builds a Huffman tree from
// those counts, and packs the input into a bit stream. The result is a
// self-describing container:
//
//	u64  distinct symbol count
//	u64  original length
//	repeat distinct symbol count times:
//	    u8   symbol
//	    u64  frequency
//	u8[] packed payload, to the end of the buffer
//
// All integers are little-endian. The tree itself is never stored: Decode
// rebuilds it from the frequency records, and tree construction is fully
// deterministic, so both sides always derive the same codes.
package huffman
