package huffman

import (
	"bytes"
	"errors"
	"io"
	"sync"
)

var errWriterClosed = errors.New("huffman: write to closed writer")

// Writer buffers everything written to it and writes a single container to
// the underlying writer on Close.
type Writer struct {
	lock   sync.Mutex
	w      io.Writer
	opts   []Option
	input  bytes.Buffer
	closed bool
}

// NewWriter returns a Writer that encodes into w.
func NewWriter(w io.Writer, opts ...Option) io.WriteCloser {
	return &Writer{w: w, opts: opts}
}

func (cw *Writer) Write(data []byte) (int, error) {
	cw.lock.Lock()
	defer cw.lock.Unlock()
	if cw.closed {
		return 0, errWriterClosed
	}
	return cw.input.Write(data)
}

// Close encodes the buffered input and writes the container. Closing a Writer
// that received no data returns ErrEmptyInput and writes nothing.
func (cw *Writer) Close() error {
	cw.lock.Lock()
	defer cw.lock.Unlock()
	if cw.closed {
		return nil
	}
	cw.closed = true
	compressed, err := Encode(cw.input.Bytes(), cw.opts...)
	cw.input.Reset()
	if err != nil {
		return err
	}
	_, err = cw.w.Write(compressed)
	return err
}

// Reader reads a whole container from the underlying reader on the first call
// to Read and then serves the decoded bytes.
type Reader struct {
	lock    sync.Mutex
	r       io.Reader
	opts    []Option
	decoded bool
	err     error
	output  bytes.Reader
}

// NewReader returns a Reader that decodes the container read from r.
func NewReader(r io.Reader, opts ...Option) io.Reader {
	return &Reader{r: r, opts: opts}
}

func (dr *Reader) Read(data []byte) (int, error) {
	dr.lock.Lock()
	defer dr.lock.Unlock()
	if !dr.decoded {
		dr.decoded = true
		dr.err = dr.decode()
	}
	if dr.err != nil {
		return 0, dr.err
	}
	return dr.output.Read(data)
}

func (dr *Reader) decode() error {
	compressed, err := io.ReadAll(dr.r)
	if err != nil {
		return err
	}
	decompressed, err := Decode(compressed, dr.opts...)
	if err != nil {
		return err
	}
	dr.output.Reset(decompressed)
	return nil
}
