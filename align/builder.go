package align

// builder accumulates aligned columns left to right. Leaves of the
// Hirschberg recursion append into one shared builder in x order, which is
// the same as concatenating the child results.
type builder struct {
	a, b []byte
}

func newBuilder(capacity int) *builder {
	return &builder{
		a: make([]byte, 0, capacity),
		b: make([]byte, 0, capacity),
	}
}

// push appends one column.
func (bl *builder) push(a, b byte) {
	bl.a = append(bl.a, a)
	bl.b = append(bl.b, b)
}

// reverseFrom reverses the columns appended since mark. Traceback emits
// columns right to left; this restores left-to-right order in place.
func (bl *builder) reverseFrom(mark int) {
	for l, r := mark, len(bl.a)-1; l < r; l, r = l+1, r-1 {
		bl.a[l], bl.a[r] = bl.a[r], bl.a[l]
		bl.b[l], bl.b[r] = bl.b[r], bl.b[l]
	}
}

func (bl *builder) result(total int) Result {
	return Result{Cost: total, A: bl.a, B: bl.b}
}
