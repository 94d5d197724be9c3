package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ============================================================================
// HISTOGRAM BINNING - equal-width bins over the numeric x-values
// ============================================================================
// binCount = min(maxBins, ceil(sqrt(n))), at least 1.
// Bin i covers [min + i*w, min + (i+1)*w); the last bin also includes max.
// Non-numeric and missing cells are excluded from edges and counts.
// ============================================================================

// ComputeHistogram extracts the numeric values of column col and bins them.
// It returns nil when the column holds no numeric values.
func ComputeHistogram(view TableView, col, maxBins int) []Bin {
	values := NumericColumn(view, col)
	return ComputeBins(values, maxBins)
}

// NumericColumn returns every parseable value of column col, in row order.
func NumericColumn(view TableView, col int) []float64 {
	values := make([]float64, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		if v, ok := ParseNumeric(view.Cell(i, col)); ok {
			values = append(values, v)
		}
	}
	return values
}

// BinCount returns the number of bins used for n values.
func BinCount(n, maxBins int) int {
	if maxBins <= 0 {
		maxBins = DefaultMaxBins
	}
	if n <= 0 {
		return 0
	}
	count := int(math.Ceil(math.Sqrt(float64(n))))
	if count > maxBins {
		count = maxBins
	}
	if count < 1 {
		count = 1
	}
	return count
}

// ComputeBins partitions values into equal-width bins. When every value is
// identical a single bin spanning that value is returned. Empty input
// returns nil.
func ComputeBins(values []float64, maxBins int) []Bin {
	n := len(values)
	if n == 0 {
		return nil
	}

	lo := floats.Min(values)
	hi := floats.Max(values)
	if lo == hi {
		return []Bin{{
			LowerBound: lo,
			UpperBound: hi,
			Label:      binLabel(lo, hi),
			Count:      n,
		}}
	}

	count := BinCount(n, maxBins)
	width := binWidth(lo, hi, count)

	bins := make([]Bin, count)
	for i := range bins {
		lower := Finite(lo + float64(i)*width)
		upper := Finite(lo + float64(i+1)*width)
		if i == 0 {
			lower = lo
		}
		if i == count-1 {
			upper = hi
		}
		bins[i] = Bin{LowerBound: lower, UpperBound: upper, Label: binLabel(lower, upper)}
	}

	for _, v := range values {
		bins[binIndex(v, lo, width, count)].Count++
	}
	return bins
}

// binWidth divides [lo, hi] into count parts. When hi-lo overflows the
// ends are scaled before subtracting.
func binWidth(lo, hi float64, count int) float64 {
	c := float64(count)
	if span := hi - lo; !math.IsInf(span, 0) {
		return span / c
	}
	return hi/c - lo/c
}

// binIndex places v in [0, count-1]; the maximum value clamps to the last bin.
func binIndex(v, lo, width float64, count int) int {
	offset := (v - lo) / width
	if math.IsInf(v-lo, 0) {
		offset = v/width - lo/width
	}
	switch {
	case math.IsNaN(offset) || offset < 0:
		return 0
	case offset >= float64(count):
		return count - 1
	}
	return int(math.Floor(offset))
}

func binLabel(lower, upper float64) string {
	return fmt.Sprintf("%.1f-%.1f", lower, upper)
}
