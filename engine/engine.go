package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/FitrahHaque/hff/compressor/huffman"
)

var Engines = [...]string{
	"huffman",
}

var writers = map[string]func(io.Writer, ...huffman.Option) io.WriteCloser{
	"huffman": huffman.NewWriter,
}

var readers = map[string]func(io.Reader, ...huffman.Option) io.Reader{
	"huffman": huffman.NewReader,
}

var (
	info    = color.New(color.FgCyan)
	success = color.New(color.FgGreen)
	notice  = color.New(color.FgYellow)
)

type compressor struct {
	compressionEngine string
	opts              []huffman.Option
}

func (c *compressor) write(content []byte) ([]byte, error) {
	newWriter, ok := writers[c.compressionEngine]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", c.compressionEngine)
	}
	var b bytes.Buffer
	w := newWriter(&b, c.opts...)
	if _, err := w.Write(content); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (c *compressor) read(content []byte) ([]byte, error) {
	newReader, ok := readers[c.compressionEngine]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", c.compressionEngine)
	}
	return io.ReadAll(newReader(bytes.NewReader(content), c.opts...))
}

// Compress compresses content in memory with the configured algorithm.
func Compress(cfg Config, content []byte) ([]byte, error) {
	bar := newProgressBar(cfg, "Compressing", len(content))
	defer bar.finish()
	c := compressor{compressionEngine: cfg.Algorithm, opts: bar.options()}
	return c.write(content)
}

// Decompress reverses Compress.
func Decompress(cfg Config, content []byte) ([]byte, error) {
	total := 0
	if h, err := huffman.ReadHeader(content); err == nil && h.Length <= uint64(len(content))*8 {
		total = int(h.Length)
	}
	bar := newProgressBar(cfg, "Decompressing", total)
	defer bar.finish()
	c := compressor{compressionEngine: cfg.Algorithm, opts: bar.options()}
	return c.read(content)
}

// CompressFiles compresses every file to a sibling named file+cfg.Extension.
// It stops at the first failure.
func CompressFiles(cfg Config, files []string) error {
	for _, file := range files {
		if err := compressFile(cfg, file, file+cfg.Extension); err != nil {
			return fmt.Errorf("compress %s: %w", file, err)
		}
	}
	return nil
}

// DecompressFiles restores every file, which must end in cfg.Extension, to the
// name without that extension. It stops at the first failure.
func DecompressFiles(cfg Config, files []string) error {
	for _, file := range files {
		outputFileName, ok := strings.CutSuffix(file, cfg.Extension)
		if !ok || outputFileName == "" || cfg.Extension == "" {
			return fmt.Errorf("decompress %s: file name does not end in %q", file, cfg.Extension)
		}
		if err := decompressFile(cfg, file, outputFileName); err != nil {
			return fmt.Errorf("decompress %s: %w", file, err)
		}
	}
	return nil
}

func compressFile(cfg Config, filePath string, outputFileName string) error {
	fileContent, err := readFile(filePath)
	if err != nil {
		return err
	}
	info.Fprintf(cfg.out(), "Compressing %s...\n", filePath)
	compressed, err := Compress(cfg, fileContent)
	if err != nil {
		return err
	}
	if err = os.WriteFile(outputFileName, compressed, 0644); err != nil {
		return err
	}
	fmt.Fprintf(cfg.out(), "Original size (in bytes): %v\n", len(fileContent))
	fmt.Fprintf(cfg.out(), "Compressed size (in bytes): %v\n", len(compressed))
	fmt.Fprintf(cfg.out(), "Compression ratio: %.2f%%\n", float32(len(compressed))/float32(len(fileContent))*100)
	success.Fprintf(cfg.out(), "Wrote %s\n", outputFileName)
	return deleteInput(cfg, filePath)
}

func decompressFile(cfg Config, filePath string, outputFileName string) error {
	fileContent, err := readFile(filePath)
	if err != nil {
		return err
	}
	info.Fprintf(cfg.out(), "Decompressing %s...\n", filePath)
	decompressed, err := Decompress(cfg, fileContent)
	if err != nil {
		return err
	}
	if err = os.WriteFile(outputFileName, decompressed, 0644); err != nil {
		return err
	}
	fmt.Fprintf(cfg.out(), "Decompressed size (in bytes): %v\n", len(decompressed))
	success.Fprintf(cfg.out(), "Wrote %s\n", outputFileName)
	return deleteInput(cfg, filePath)
}

func readFile(filePath string) ([]byte, error) {
	fileContent, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not open the provided file %s", filePath)
	}
	return fileContent, err
}

func deleteInput(cfg Config, filePath string) error {
	if !cfg.Delete {
		return nil
	}
	if err := os.Remove(filePath); err != nil {
		return err
	}
	notice.Fprintf(cfg.out(), "Deleted %s\n", filePath)
	return nil
}
