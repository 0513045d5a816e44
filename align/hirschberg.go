package align

import (
	"sync"

	"github.com/katalvlaran/seqalign/cost"
)

// Hirschberg — linear-space divide and conquer alignment.
//
// Each call is a two-state machine:
//
//	Base:  len(x) ≤ BaseCase or len(y) ≤ BaseCase
//	       → Quadratic on (x, y).
//	Split: mid = len(x)/2
//	       v1 = PrefixCosts(x[:mid], y, Forward)
//	       v2 = PrefixCosts(x[mid:], y, Reverse)
//	       k  = smallest argmin_j v1[j] + v2[n-j]
//	       → Hirschberg(x[:mid], y[:k]) ++ Hirschberg(x[mid:], y[k:])
//
// The left half is always solved (and appended) before the right half, so
// columns come out in x order. Costs of the halves add up to the optimum.
//
// Memory: four score rows of len(y)+1 are allocated once and reused by every
// level (a split's vectors are dead once k is known), plus the output and
// O(len) leaf tables. Recursion depth is O(log len(x)).
//
// Options: BaseCase and ParallelScan apply; Method is ignored.
//
// Errors: ErrNilModel, ErrBadOption, cost.ErrAlphabetMismatch.
func Hirschberg(x, y []byte, m *cost.Model, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = checkInputs(x, y, m); err != nil {
		return Result{}, err
	}

	h := newOrchestrator(m, len(x), len(y), o)
	total := h.solve(x, y)

	return h.out.result(total), nil
}

// orchestrator carries the state shared along one Hirschberg run:
// the read-only model, the reusable score rows and the output builder.
type orchestrator struct {
	m        *cost.Model
	baseCase int
	parallel bool
	fwd      [2][]int // forward scan rows
	rev      [2][]int // reverse scan rows
	out      *builder
}

func newOrchestrator(m *cost.Model, lx, n int, o Options) *orchestrator {
	return &orchestrator{
		m:        m,
		baseCase: o.BaseCase,
		parallel: o.ParallelScan,
		fwd:      [2][]int{make([]int, n+1), make([]int, n+1)},
		rev:      [2][]int{make([]int, n+1), make([]int, n+1)},
		out:      newBuilder(lx + n),
	}
}

// solve aligns x with y, appending columns to h.out, and returns the cost.
func (h *orchestrator) solve(x, y []byte) int {
	if len(x) <= h.baseCase || len(y) <= h.baseCase {
		return quadratic(x, y, h.m, h.out)
	}

	mid := len(x) / 2
	k := h.split(x, y, mid)

	left := h.solve(x[:mid], y[:k])
	right := h.solve(x[mid:], y[k:])

	return left + right
}

// split returns the smallest k in [0, len(y)] minimising
// cost(x[:mid] vs y[:k]) + cost(x[mid:] vs y[k:]).
func (h *orchestrator) split(x, y []byte, mid int) int {
	n := len(y)
	var v1, v2 []int
	forward := func() { v1 = scan(x[:mid], y, h.m, Forward, h.fwd[0], h.fwd[1]) }
	reverse := func() { v2 = scan(x[mid:], y, h.m, Reverse, h.rev[0], h.rev[1]) }

	if h.parallel {
		var wg sync.WaitGroup
		wg.Go(forward)
		wg.Go(reverse)
		wg.Wait()
	} else {
		forward()
		reverse()
	}

	bestK, best := 0, v1[0]+v2[n]
	for k := 1; k <= n; k++ {
		if s := v1[k] + v2[n-k]; s < best {
			bestK, best = k, s
		}
	}

	return bestK
}
