package gen

import "sync"

// Budget is the shared remaining-line counter used by the shared-memory
// worker model. Every worker holds the same *Budget and reserves one line
// per emitted candidate.
type Budget struct {
	mu        sync.Mutex
	remaining int
	unlimited bool
}

// NewBudget returns a budget of max lines; max <= 0 means unlimited.
func NewBudget(max int) *Budget {
	if max <= 0 {
		return &Budget{unlimited: true}
	}
	return &Budget{remaining: max}
}

// Take reserves one output line, reporting false once the budget is spent.
func (b *Budget) Take() bool {
	if b.unlimited {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// Exhausted reports whether nothing is left to take.
func (b *Budget) Exhausted() bool {
	if b.unlimited {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining <= 0
}

// SplitQuota statically pre-divides max lines across workers for the
// isolated-memory model, remainder going to the first workers. A quota of
// -1 means unlimited (no cap configured).
func SplitQuota(max, workers int) []int {
	quotas := make([]int, workers)
	if max <= 0 {
		for i := range quotas {
			quotas[i] = -1
		}
		return quotas
	}

	each := max / workers
	rem := max % workers
	for i := range quotas {
		quotas[i] = each
		if i < rem {
			quotas[i]++
		}
	}
	return quotas
}
