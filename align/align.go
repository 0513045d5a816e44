package align

import "github.com/katalvlaran/seqalign/cost"

// Align computes an optimal global alignment of x and y under m, using the
// engine chosen by WithMethod (Efficient by default).
//
// Example:
//
//	res, err := Align([]byte("ACTG"), []byte("TACG"), cost.DNA(),
//	    WithMethod(Basic))
func Align(x, y []byte, m *cost.Model, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}

	switch o.Method {
	case Basic:
		return Quadratic(x, y, m)
	default:
		return Hirschberg(x, y, m, opts...)
	}
}
