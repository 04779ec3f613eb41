package engine

import (
	pb "github.com/cheggaaa/pb/v3"

	"github.com/FitrahHaque/hff/compressor/huffman"
)

// progressBar adapts a pb bar to huffman.ProgressFunc. A nil *progressBar is
// valid and does nothing.
type progressBar struct {
	bar *pb.ProgressBar
}

func newProgressBar(cfg Config, prefix string, total int) *progressBar {
	if !cfg.Progress || total == 0 {
		return nil
	}
	bar := pb.New(total)
	bar.Set(pb.Bytes, true)
	bar.Set("prefix", prefix+" ")
	if cfg.ProgressOut != nil {
		bar.SetWriter(cfg.ProgressOut)
	}
	bar.Start()
	return &progressBar{bar: bar}
}

func (p *progressBar) options() []huffman.Option {
	if p == nil {
		return nil
	}
	return []huffman.Option{huffman.WithProgress(p.update)}
}

func (p *progressBar) update(progress huffman.Progress) {
	if progress.Total != uint64(p.bar.Total()) {
		p.bar.SetTotal(int64(progress.Total))
	}
	p.bar.SetCurrent(int64(progress.Done))
}

func (p *progressBar) finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
}
