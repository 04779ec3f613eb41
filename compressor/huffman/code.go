package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

const maxCodeSize = 64

// Code is the bit pattern assigned to one symbol.
type Code struct {
	// Bits holds the pattern. The most significant of the Size low bits is
	// the first bit written.
	Bits uint64

	// Size is the number of valid bits. It is zero only for absent symbols.
	Size uint8
}

// String returns the code as a quoted string of '0' and '1' characters.
func (c Code) String() string {
	if c.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(c.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, c.Bits))
}

var _ fmt.Stringer = Code{}

// CodeTable maps every byte value to its Code.
type CodeTable [256]Code

// BuildCodeTable assigns codes by walking t depth first, appending 0 for each
// left edge and 1 for each right edge. A tree consisting of a single leaf
// gives that symbol the one-bit code "0".
func BuildCodeTable(t *Tree) CodeTable {
	var codes CodeTable
	if t.isLeaf(t.root) {
		codes[t.nodes[t.root].symbol] = Code{Bits: 0, Size: 1}
		return codes
	}

	type stackItem struct {
		h    int32
		code Code
	}

	stack := make([]stackItem, 0, t.Leaves())
	stack = append(stack, stackItem{h: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.isLeaf(top.h) {
			codes[t.nodes[top.h].symbol] = top.code
			continue
		}

		assert.Assertf(top.code.Size < maxCodeSize, "code size %d exceeds %d bits", top.code.Size+1, maxCodeSize)
		n := t.nodes[top.h]
		next := Code{Bits: top.code.Bits << 1, Size: top.code.Size + 1}
		stack = append(stack, stackItem{h: n.right, code: Code{Bits: next.Bits | 1, Size: next.Size}})
		stack = append(stack, stackItem{h: n.left, code: next})
	}
	return codes
}

// EncodedBits returns the payload size in bits for content with frequencies
// freq under this table.
func (ct *CodeTable) EncodedBits(freq *FrequencyTable) uint64 {
	var total uint64
	for symbol, count := range freq {
		total += count * uint64(ct[symbol].Size)
	}
	return total
}

// Dump writes a programmer-readable listing of the assigned codes to w.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol, hc := range ct {
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\t0x%02x = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
