// Package report compares batches of basic and efficient alignment outputs:
// time, memory and cost agreement per test case, keyed by the number in the
// output file name.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"cloudeng.io/errors"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/seqalign/cost"
	"github.com/katalvlaran/seqalign/seqio"
)

// outputName matches output<N>.txt and outputin<N>.txt.
var outputName = regexp.MustCompile(`^output(?:in)?(\d+)\.txt$`)

// Entry is one parsed output file.
type Entry struct {
	Index  int
	Path   string
	Output seqio.Output
}

// Load reads every output file in dir, sorted by Index. Files whose names do
// not match are ignored; files that fail to parse are collected into one
// multi-error while the rest still load.
func Load(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var (
		entries []Entry
		errs    errors.M
	)
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		match := outputName.FindStringSubmatch(de.Name())
		if match == nil {
			continue
		}
		idx, err := strconv.Atoi(match[1])
		if err != nil {
			errs.Append(fmt.Errorf("%s: %w", de.Name(), err))
			continue
		}
		path := filepath.Join(dir, de.Name())
		o, err := seqio.ReadOutputFile(path)
		if err != nil {
			errs.Append(err)
			continue
		}
		entries = append(entries, Entry{Index: idx, Path: path, Output: o})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return a.Index - b.Index })

	return entries, errs.Err()
}

// Row pairs the basic and efficient runs of one test case.
type Row struct {
	Index         int
	Size          int // m+n of the unaligned inputs
	BasicCost     int
	EfficientCost int
	BasicTime     time.Duration
	EfficientTime time.Duration
	BasicKB       int64
	EfficientKB   int64
}

// CostsAgree reports whether both engines found the same optimal cost.
func (r Row) CostsAgree() bool { return r.BasicCost == r.EfficientCost }

// Compare joins basic and efficient entries on Index, ascending. Cases
// present on only one side are dropped.
func Compare(basic, efficient []Entry) []Row {
	byIndex := make(map[int]Entry, len(efficient))
	for _, e := range efficient {
		byIndex[e.Index] = e
	}

	rows := make([]Row, 0, min(len(basic), len(efficient)))
	for _, b := range basic {
		e, ok := byIndex[b.Index]
		if !ok {
			continue
		}
		rows = append(rows, Row{
			Index:         b.Index,
			Size:          problemSize(b.Output),
			BasicCost:     b.Output.Cost,
			EfficientCost: e.Output.Cost,
			BasicTime:     b.Output.Elapsed,
			EfficientTime: e.Output.Elapsed,
			BasicKB:       b.Output.MemoryKB,
			EfficientKB:   e.Output.MemoryKB,
		})
	}
	slices.SortFunc(rows, func(a, b Row) int { return a.Index - b.Index })

	return rows
}

// problemSize counts the non-gap symbols of both aligned rows.
func problemSize(o seqio.Output) int {
	gap := string(cost.Gap)
	return len(o.A) - strings.Count(o.A, gap) + len(o.B) - strings.Count(o.B, gap)
}

// Render writes rows as an aligned text table.
func Render(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "case\tm+n\tcost\tbasic time\tefficient time\tbasic mem\tefficient mem\tagree\t")
	for _, r := range rows {
		c := strconv.Itoa(r.BasicCost)
		if !r.CostsAgree() {
			c = fmt.Sprintf("%d/%d", r.BasicCost, r.EfficientCost)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%t\t\n",
			r.Index,
			humanize.Comma(int64(r.Size)),
			c,
			formatMillis(r.BasicTime),
			formatMillis(r.EfficientTime),
			humanize.IBytes(uint64(max(r.BasicKB, 0))*1024),
			humanize.IBytes(uint64(max(r.EfficientKB, 0))*1024),
			r.CostsAgree(),
		)
	}

	return tw.Flush()
}

func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64) + "ms"
}
