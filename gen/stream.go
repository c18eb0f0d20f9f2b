package gen

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LineWriter is the output sink capability the coordinator writes accepted
// candidates to, one line per call. Implementations live in the sink
// package; the pipeline treats stdout, plain files and gzip files the same.
type LineWriter interface {
	WriteLine(line string) error
}

// Progress is an optional observer told how many lines were just emitted.
// It has no effect on generation.
type Progress interface {
	Add(n int)
}

type nopProgress struct{}

func (nopProgress) Add(int) {}

// Isolated-mode workers hand lines back to the coordinator in chunks of
// this size, bounding how much output sits buffered before a cancellation
// check.
const chunkSize = 128

// Run drives the whole generate-filter-stream pipeline to completion or to
// the configured max-count, whichever comes first, and returns the number
// of lines emitted. The base-string stream is sharded across cfg.Workers
// workers; each worker runs the full downstream pipeline for its shard.
// Output order across workers is unspecified, order within one worker's
// shard is deterministic.
func Run(ctx context.Context, cfg *Config, out LineWriter, prog Progress) (int, error) {
	if prog == nil {
		prog = nopProgress{}
	}

	masks := make([]*Mask, len(cfg.Masks))
	for i, raw := range cfg.Masks {
		m, err := parseMask(raw)
		if err != nil {
			return 0, &ConfigError{Field: "mask", Err: err}
		}
		masks[i] = m
	}

	p := &pipeline{
		cfg:   cfg,
		masks: masks,
		filter: Filter{
			MinLength:  cfg.MinLength,
			MaxLength:  cfg.MaxLength,
			MinEntropy: cfg.MinEntropy,
			Blacklist:  cfg.Blacklist,
		},
	}

	if cfg.Isolated && cfg.Workers > 1 {
		return p.runIsolated(ctx, out, prog)
	}
	return p.runShared(ctx, out, prog)
}

type pipeline struct {
	cfg    *Config
	masks  []*Mask
	filter Filter
}

// forBase runs the variant expansion and mask composition for one base
// string, yielding every raw candidate. Returns false when yield stopped.
func (p *pipeline) forBase(base string, yield func(string) bool) bool {
	v := Expand(base, p.cfg.Cases, p.cfg.Leet, p.cfg.LeetMax)
	for _, m := range p.masks {
		if !m.compose(v, p.cfg.Numbers, p.cfg.Symbols, p.cfg.Years, yield) {
			return false
		}
	}
	return true
}

// feed pushes base strings into the shard channel until the stream is
// exhausted, the context is cancelled, every worker has quit, or stop says
// to give up.
func (p *pipeline) feed(ctx context.Context, bases chan<- string, workersDone <-chan struct{}, stop func() bool) error {
	defer close(bases)

	for base := range BaseStrings(p.cfg.Words, p.cfg.Joiners, p.cfg.MaxPermLength) {
		if stop != nil && stop() {
			return nil
		}

		select {
		case bases <- base:
		case <-ctx.Done():
			return nil
		case <-workersDone:
			return nil
		}
	}
	return nil
}

// runShared is the shared-memory model: one live budget counter and one
// locked sink shared by every worker. The cap is enforced by reserving a
// line from the budget before each write, so the total never exceeds it.
func (p *pipeline) runShared(ctx context.Context, out LineWriter, prog Progress) (int, error) {
	budget := NewBudget(p.cfg.MaxCount)

	g, ctx := errgroup.WithContext(ctx)
	bases := make(chan string, p.cfg.Workers)

	var workerWg sync.WaitGroup
	workersDone := make(chan struct{})

	g.Go(func() error {
		return p.feed(ctx, bases, workersDone, budget.Exhausted)
	})

	var writeMu sync.Mutex
	counts := make([]int, p.cfg.Workers)

	for w := 0; w < p.cfg.Workers; w++ {
		workerWg.Add(1)
		g.Go(func() (err error) {
			defer workerWg.Done()
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerError{Worker: w, Err: fmt.Errorf("panic: %v", r)}
				}
			}()

			for base := range bases {
				var werr error
				stopped := false

				p.forBase(base, func(cand string) bool {
					if ctx.Err() != nil {
						stopped = true
						return false
					}
					if !p.filter.Accept(cand) {
						return true
					}
					if !budget.Take() {
						stopped = true
						return false
					}

					writeMu.Lock()
					werr = out.WriteLine(cand)
					writeMu.Unlock()
					if werr != nil {
						return false
					}

					counts[w]++
					prog.Add(1)
					return true
				})

				if werr != nil {
					return werr
				}
				if stopped {
					return nil
				}
			}
			return nil
		})
	}

	go func() {
		workerWg.Wait()
		close(workersDone)
	}()

	err := g.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, err
}

// runIsolated is the isolated-memory model: no live counter is shared.
// The cap is pre-split into static per-worker quotas at dispatch time and
// each worker only enforces its own; workers return buffered chunks to a
// single writer that serializes all sink access. The realized total may
// fall short of the cap by up to workers-1 lines when a shard underruns
// its quota.
func (p *pipeline) runIsolated(ctx context.Context, out LineWriter, prog Progress) (int, error) {
	quotas := SplitQuota(p.cfg.MaxCount, p.cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	bases := make(chan string, p.cfg.Workers)
	chunks := make(chan []string, p.cfg.Workers)

	var workerWg sync.WaitGroup
	workersDone := make(chan struct{})

	g.Go(func() error {
		return p.feed(ctx, bases, workersDone, nil)
	})

	for w := 0; w < p.cfg.Workers; w++ {
		workerWg.Add(1)
		g.Go(func() (err error) {
			defer workerWg.Done()
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerError{Worker: w, Err: fmt.Errorf("panic: %v", r)}
				}
			}()

			remaining := quotas[w] // -1 means unlimited
			if remaining == 0 {
				return nil
			}

			buf := make([]string, 0, chunkSize)
			flush := func() bool {
				if len(buf) == 0 {
					return true
				}
				chunk := buf
				buf = make([]string, 0, chunkSize)
				select {
				case chunks <- chunk:
					return true
				case <-ctx.Done():
					return false
				}
			}

			for base := range bases {
				stopped := false

				p.forBase(base, func(cand string) bool {
					if ctx.Err() != nil {
						stopped = true
						return false
					}
					if !p.filter.Accept(cand) {
						return true
					}

					buf = append(buf, cand)
					if remaining > 0 {
						remaining--
						if remaining == 0 {
							stopped = true
							return false
						}
					}
					if len(buf) == chunkSize && !flush() {
						stopped = true
						return false
					}
					return true
				})

				if stopped {
					break
				}
			}

			flush()
			return nil
		})
	}

	go func() {
		workerWg.Wait()
		close(workersDone)
		close(chunks)
	}()

	var total int
	g.Go(func() error {
		for chunk := range chunks {
			for _, line := range chunk {
				if err := out.WriteLine(line); err != nil {
					return err
				}
			}
			total += len(chunk)
			prog.Add(len(chunk))
		}
		return nil
	})

	err := g.Wait()
	return total, err
}
