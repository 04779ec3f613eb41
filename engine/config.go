package engine

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// DefaultExtension is appended to compressed file names.
const DefaultExtension = ".hff"

// Config controls how files are compressed and decompressed.
type Config struct {
	// Algorithm names a registered engine, see Engines.
	Algorithm string

	// Extension is appended on compression and stripped on decompression.
	Extension string

	// Delete removes each input file once its output has been written.
	Delete bool

	// Progress shows a progress bar on ProgressOut.
	Progress bool

	// Out receives status lines.
	Out io.Writer

	// ProgressOut receives the progress bar.
	ProgressOut io.Writer
}

// DefaultConfig returns the huffman engine with the .hff extension, printing
// to the terminal and showing progress when stderr is a terminal.
func DefaultConfig() Config {
	fd := os.Stderr.Fd()
	return Config{
		Algorithm:   Engines[0],
		Extension:   DefaultExtension,
		Progress:    isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Out:         colorable.NewColorableStdout(),
		ProgressOut: colorable.NewColorableStderr(),
	}
}

func (c Config) out() io.Writer {
	if c.Out == nil {
		return io.Discard
	}
	return c.Out
}
