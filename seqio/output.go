package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedOutput indicates an output file that is not five valid lines.
var ErrMalformedOutput = errors.New("seqio: malformed output")

// outputLines is the fixed number of lines in an output file.
const outputLines = 5

// Output is one alignment run as serialized to disk.
type Output struct {
	Cost     int
	A        string
	B        string
	Elapsed  time.Duration
	MemoryKB int64
}

// WriteOutput writes o as five newline-terminated lines: cost, A, B,
// elapsed milliseconds (three decimals), memory KB.
func WriteOutput(w io.Writer, o Output) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", o.Cost)
	fmt.Fprintf(bw, "%s\n", o.A)
	fmt.Fprintf(bw, "%s\n", o.B)
	fmt.Fprintf(bw, "%.3f\n", float64(o.Elapsed)/float64(time.Millisecond))
	fmt.Fprintf(bw, "%d\n", o.MemoryKB)

	return bw.Flush()
}

// WriteOutputFile writes o to path, creating parent directories.
func WriteOutputFile(path string, o Output) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteOutput(f, o)
}

// ReadOutput parses the five-line layout. Rows may be empty (empty inputs);
// trailing blank lines are ignored. Time and memory accept any float so files
// written by other tools still load.
func ReadOutput(r io.Reader) (Output, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return Output{}, err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < outputLines {
		return Output{}, fmt.Errorf("%d lines, want %d: %w", len(lines), outputLines, ErrMalformedOutput)
	}

	var (
		o   Output
		err error
	)
	if o.Cost, err = strconv.Atoi(lines[0]); err != nil {
		return Output{}, fmt.Errorf("cost %q: %w", lines[0], ErrMalformedOutput)
	}
	o.A, o.B = lines[1], lines[2]
	ms, err := strconv.ParseFloat(lines[3], 64)
	if err != nil {
		return Output{}, fmt.Errorf("elapsed %q: %w", lines[3], ErrMalformedOutput)
	}
	o.Elapsed = time.Duration(ms * float64(time.Millisecond))
	kb, err := strconv.ParseFloat(lines[4], 64)
	if err != nil {
		return Output{}, fmt.Errorf("memory %q: %w", lines[4], ErrMalformedOutput)
	}
	o.MemoryKB = int64(kb)

	return o, nil
}

// ReadOutputFile parses the output file at path.
func ReadOutputFile(path string) (Output, error) {
	f, err := os.Open(path)
	if err != nil {
		return Output{}, err
	}
	defer f.Close()

	o, err := ReadOutput(f)
	if err != nil {
		return Output{}, fmt.Errorf("%s: %w", path, err)
	}

	return o, nil
}
