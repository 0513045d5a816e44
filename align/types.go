package align

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the align package. Cost model failures
// (cost.ErrAlphabetMismatch, cost.ErrCostLookup) pass through wrapped.
var (
	// ErrNilModel indicates that a nil *cost.Model was supplied.
	ErrNilModel = errors.New("align: cost model is nil")

	// ErrBadOption indicates an invalid Options combination.
	ErrBadOption = errors.New("align: invalid option")

	// ErrLengthMismatch indicates aligned rows of different lengths.
	ErrLengthMismatch = errors.New("align: aligned sequences differ in length")

	// ErrDoubleGap indicates a column holding the gap marker in both rows.
	ErrDoubleGap = errors.New("align: gap aligned against gap")

	// ErrInvalidAlignment indicates a Result that violates an alignment invariant.
	ErrInvalidAlignment = errors.New("align: invalid alignment")
)

// Result is one optimal alignment.
//   - Cost is the total substitution + gap cost.
//   - A and B have equal length; removing cost.Gap from A yields x, from B yields y.
type Result struct {
	Cost int
	A    []byte
	B    []byte
}

// Direction selects which end of y the scanner anchors at.
type Direction int

const (
	// Forward scores x against every prefix y[0:j).
	Forward Direction = iota

	// Reverse scores x against every suffix y[n-j:n).
	Reverse
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Method selects the engine used by Align.
type Method int

const (
	// Basic runs the quadratic-memory DP engine.
	Basic Method = iota

	// Efficient runs Hirschberg's linear-memory divide and conquer.
	Efficient
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Basic:
		return "basic"
	case Efficient:
		return "efficient"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "basic" / "efficient" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "basic":
		return Basic, nil
	case "efficient":
		return Efficient, nil
	}
	return 0, fmt.Errorf("method %q: %w", s, ErrBadOption)
}

// DefaultBaseCase is the Hirschberg leaf bound: subproblems where either
// side has at most this many symbols go to the quadratic engine.
const DefaultBaseCase = 2

// Options configures Align and Hirschberg.
//
//   - Method:       engine used by Align (Basic or Efficient).
//   - BaseCase:     Hirschberg leaf bound, must be ≥ 1.
//   - ParallelScan: compute the forward and reverse score vectors of each
//     split concurrently. Output is identical to the sequential run.
type Options struct {
	Method       Method
	BaseCase     int
	ParallelScan bool
}

// Option represents a functional option for configuring an alignment.
type Option func(*Options)

// WithMethod selects the engine used by Align.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithBaseCase sets the Hirschberg leaf bound. Values < 1 are rejected
// with ErrBadOption when the alignment runs.
func WithBaseCase(n int) Option {
	return func(o *Options) {
		o.BaseCase = n
	}
}

// WithParallelScan runs the two score scans of every split concurrently.
func WithParallelScan() Option {
	return func(o *Options) {
		o.ParallelScan = true
	}
}

// DefaultOptions returns the defaults:
//   - Method:       Efficient
//   - BaseCase:     DefaultBaseCase (2)
//   - ParallelScan: false
func DefaultOptions() Options {
	return Options{
		Method:   Efficient,
		BaseCase: DefaultBaseCase,
	}
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.BaseCase < 1 {
		return o, fmt.Errorf("base case %d: %w", o.BaseCase, ErrBadOption)
	}
	if o.Method != Basic && o.Method != Efficient {
		return o, fmt.Errorf("%v: %w", o.Method, ErrBadOption)
	}

	return o, nil
}
