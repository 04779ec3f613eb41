package huffman

// Progress describes how far an Encode or Decode call has come. Done and
// Total count input bytes while encoding and output bytes while decoding.
type Progress struct {
	Done  uint64
	Total uint64
}

// Fraction returns Done/Total in [0, 1]. A zero Total counts as complete.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Done) / float64(p.Total)
}

// ProgressFunc receives progress updates. It is called from the goroutine
// running Encode or Decode.
type ProgressFunc func(Progress)

// Option configures Encode, Decode and the stream adapters.
type Option func(*options)

type options struct {
	progress ProgressFunc
}

// WithProgress registers fn to be called roughly once per percent of work and
// once more when the call completes.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// progressTracker throttles reports to about one per percent. Totals below
// 100 use a step of one so there is no zero divisor.
type progressTracker struct {
	fn    ProgressFunc
	total uint64
	step  uint64
	next  uint64
}

func newProgressTracker(fn ProgressFunc, total uint64) *progressTracker {
	step := total / 100
	if step == 0 {
		step = 1
	}
	return &progressTracker{fn: fn, total: total, step: step, next: step}
}

func (t *progressTracker) update(done uint64) {
	if t.fn == nil || done < t.next || done >= t.total {
		return
	}
	t.next = done + t.step
	t.fn(Progress{Done: done, Total: t.total})
}

func (t *progressTracker) finish() {
	if t.fn == nil || t.total == 0 {
		return
	}
	t.fn(Progress{Done: t.total, Total: t.total})
}
