package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

// progressReporter adapts pterm to the coordinator's Progress capability.
// With a known cap it renders a real progress bar; otherwise a spinner with
// a live line count. Workers call Add concurrently, hence the mutex.
type progressReporter struct {
	mu      sync.Mutex
	bar     *pterm.ProgressbarPrinter
	spinner *pterm.SpinnerPrinter
	count   int
	shown   int
}

func newProgress(total int) *progressReporter {
	p := &progressReporter{}

	if total > 0 {
		p.bar, _ = pterm.DefaultProgressbar.
			WithTotal(total).
			WithTitle("Generating").
			WithShowCount(true).
			WithShowElapsedTime(true).
			WithShowPercentage(true).
			WithWriter(os.Stderr).
			Start()
	} else {
		p.spinner, _ = pterm.DefaultSpinner.
			WithWriter(os.Stderr).
			Start("Generating...")
	}

	return p
}

func (p *progressReporter) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.count += n
	if p.bar != nil {
		p.bar.Add(n)
		return
	}

	// spinner redraws are not free, update every thousand lines
	if p.spinner != nil && p.count-p.shown >= 1000 {
		p.shown = p.count
		p.spinner.UpdateText(fmt.Sprintf("Generating... %d lines", p.count))
	}
}

func (p *progressReporter) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		_, err := p.bar.Stop()
		_ = err
	}
	if p.spinner != nil {
		_ = p.spinner.Stop()
	}
}
