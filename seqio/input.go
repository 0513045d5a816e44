package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrMalformedInput indicates an input file that does not follow the
	// base / indices / base / indices layout.
	ErrMalformedInput = errors.New("seqio: malformed input")

	// ErrIndexOutOfRange indicates an insertion index outside [0, len(s)).
	ErrIndexOutOfRange = errors.New("seqio: insertion index out of range")
)

// Template is a compact sequence description: a base string expanded by a
// list of self-insertion indices.
type Template struct {
	Base    string
	Indices []int
}

// Expand applies the template. See Expand.
func (t Template) Expand() (string, error) {
	return Expand(t.Base, t.Indices)
}

// Expand splices, for each index i in order, a full copy of the current
// string immediately after position i:
//
//	s = s[:i+1] + s + s[i+1:]
//
// Every step doubles the length. ("ACTG", [3, 6, 1]) yields
// "ACACTGACTACTGACTGGTGACTACTGACTGG".
//
// Errors: ErrIndexOutOfRange when i < 0 or i ≥ len(s) at that step.
func Expand(base string, indices []int) (string, error) {
	s := base
	for step, i := range indices {
		if i < 0 || i >= len(s) {
			return "", fmt.Errorf("index %d at step %d for length %d: %w", i, step, len(s), ErrIndexOutOfRange)
		}
		var sb strings.Builder
		sb.Grow(2 * len(s))
		sb.WriteString(s[:i+1])
		sb.WriteString(s)
		sb.WriteString(s[i+1:])
		s = sb.String()
	}

	return s, nil
}

// Input holds the two templates of one alignment problem.
type Input struct {
	X Template
	Y Template
}

// Sequences expands both templates.
func (in Input) Sequences() (x, y []byte, err error) {
	xs, err := in.X.Expand()
	if err != nil {
		return nil, nil, fmt.Errorf("first sequence: %w", err)
	}
	ys, err := in.Y.Expand()
	if err != nil {
		return nil, nil, fmt.Errorf("second sequence: %w", err)
	}

	return []byte(xs), []byte(ys), nil
}

// ParseInput reads the two-template input layout.
func ParseInput(r io.Reader) (Input, error) {
	var (
		in      Input
		current *Template
		bases   int
		line    int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if n, err := strconv.Atoi(text); err == nil {
			if current == nil {
				return Input{}, fmt.Errorf("line %d: index before first base string: %w", line, ErrMalformedInput)
			}
			current.Indices = append(current.Indices, n)
			continue
		}

		bases++
		switch bases {
		case 1:
			current = &in.X
		case 2:
			current = &in.Y
		default:
			return Input{}, fmt.Errorf("line %d: unexpected third base string %q: %w", line, text, ErrMalformedInput)
		}
		current.Base = text
	}
	if err := sc.Err(); err != nil {
		return Input{}, err
	}
	if bases != 2 {
		return Input{}, fmt.Errorf("found %d base strings, want 2: %w", bases, ErrMalformedInput)
	}

	return in, nil
}

// ReadInputFile parses the input file at path.
func ReadInputFile(path string) (Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return Input{}, err
	}
	defer f.Close()

	in, err := ParseInput(f)
	if err != nil {
		return Input{}, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}
