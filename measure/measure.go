// Package measure times one alignment run and estimates its peak heap use,
// producing the elapsed-time and memory lines of an output file.
//
// Memory is sampled from runtime.MemStats.HeapInuse by a background ticker
// while the run executes, plus once right after it returns; the reported
// figure is the highest sample minus a baseline taken after a forced GC.
// Sampling can miss short-lived spikes between ticks, so treat the number as
// a lower bound.
package measure

import (
	"runtime"
	"sync"
	"time"
)

// DefaultInterval is the heap sampling period.
const DefaultInterval = time.Millisecond

// Stats is the outcome of one measured run.
type Stats struct {
	Elapsed time.Duration
	PeakKB  int64
}

// Options configures Run.
type Options struct {
	Interval time.Duration
}

// Option represents a functional option for Run.
type Option func(*Options)

// WithInterval sets the heap sampling period. Non-positive values keep
// DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Interval = d
		}
	}
}

// Run executes fn and reports its wall-clock duration and peak heap growth.
// fn's error is returned unchanged alongside the stats gathered so far.
func Run(fn func() error, opts ...Option) (Stats, error) {
	o := Options{Interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}

	runtime.GC()
	base := heapInuse()

	s := newSampler(base)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Go(func() { s.loop(o.Interval, stop) })

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	s.sample()
	close(stop)
	wg.Wait()

	return Stats{Elapsed: elapsed, PeakKB: int64(s.peak-base) / 1024}, err
}

// sampler tracks the highest HeapInuse seen.
type sampler struct {
	mu   sync.Mutex
	peak uint64
}

func newSampler(base uint64) *sampler {
	return &sampler{peak: base}
}

func (s *sampler) loop(interval time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.sample()
		}
	}
}

func (s *sampler) sample() {
	v := heapInuse()
	s.mu.Lock()
	if v > s.peak {
		s.peak = v
	}
	s.mu.Unlock()
}

func heapInuse() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapInuse
}
