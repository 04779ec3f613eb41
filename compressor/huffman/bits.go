package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// packBits writes the code of every byte of content to w, most significant
// bit first. The final partial byte is padded with zero bits.
func packBits(w io.Writer, content []byte, codes *CodeTable, progress *progressTracker) error {
	bw := bitio.NewWriter(w)
	for i, symbol := range content {
		hc := codes[symbol]
		if hc.Size == 0 {
			return fmt.Errorf("huffman: symbol %#x has no code", symbol)
		}
		if err := bw.WriteBits(hc.Bits, hc.Size); err != nil {
			return err
		}
		progress.update(uint64(i + 1))
	}
	if err := bw.Close(); err != nil {
		return err
	}
	progress.finish()
	return nil
}

// unpackBits walks t once per payload bit, starting over at the root after
// every leaf, until size symbols have been produced. Bits past the last
// symbol are padding and are never read.
func unpackBits(payload []byte, t *Tree, size uint64, progress *progressTracker) ([]byte, error) {
	out := make([]byte, 0, size)
	if size == 0 {
		return out, nil
	}

	br := bitio.NewReader(bytes.NewReader(payload))
	lone := t.isLeaf(t.root)
	current := t.root
	for uint64(len(out)) < size {
		bit, err := br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: payload exhausted after %d of %d bytes", ErrMalformedContainer, len(out), size)
			}
			return nil, err
		}

		if lone {
			if bit {
				return nil, fmt.Errorf("%w: unexpected 1 bit for single-symbol payload at byte %d", ErrMalformedContainer, len(out))
			}
		} else {
			current = t.child(current, bit)
			if !t.isLeaf(current) {
				continue
			}
		}

		out = append(out, t.nodes[current].symbol)
		current = t.root
		progress.update(uint64(len(out)))
	}
	progress.finish()
	return out, nil
}
