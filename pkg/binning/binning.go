// Package binning selects histogram bin counts from a numeric sample using
// the standard formal rules.
package binning

import (
	"errors"
	"fmt"
	"math"

	"github.com/insper-data/insperplot/pkg/stats"
)

// Method names a bin-count selection rule.
type Method string

// Supported methods.
const (
	// Sturges is ceil(log2(n) + 1), the default.
	Sturges Method = "sturges"
	// FreedmanDiaconis uses bin width 2*IQR/n^(1/3).
	FreedmanDiaconis Method = "freedman_diaconis"
	// Scott uses bin width 3.49*σ/n^(1/3).
	Scott Method = "scott"
	// Manual takes the bin count directly from the caller.
	Manual Method = "manual"
)

// Sentinel errors.
var (
	// ErrMissingBinCount is returned when Manual is selected without a count.
	ErrMissingBinCount = errors.New("manual binning requires a bin count")
	// ErrInvalidMethod is returned for an unrecognized method name.
	ErrInvalidMethod = errors.New("invalid binning method")
)

const scottFactor = 3.49

// Count returns the bin count for values under method m. manual is only
// consulted when m is Manual. An empty sample yields one bin. The result is
// deterministic for a given input.
func Count(values []float64, m Method, manual int) (int, error) {
	if m == Manual {
		if manual < 1 {
			return 0, ErrMissingBinCount
		}

		return manual, nil
	}

	n := len(values)
	if n == 0 {
		return 1, nil
	}

	switch m {
	case Sturges:
		return sturges(n), nil

	case FreedmanDiaconis:
		width := 2 * stats.IQR(values) / math.Cbrt(float64(n))

		return countFromWidth(values, width, n), nil

	case Scott:
		_, sigma := stats.MeanStdDev(values)
		width := scottFactor * sigma / math.Cbrt(float64(n))

		return countFromWidth(values, width, n), nil

	default:
		return 0, fmt.Errorf("%w: %q (valid: %s, %s, %s, %s)",
			ErrInvalidMethod, m, Sturges, FreedmanDiaconis, Scott, Manual)
	}
}

func sturges(n int) int {
	return int(math.Ceil(math.Log2(float64(n)) + 1))
}

// countFromWidth converts a bin width into a count over the sample range.
// Degenerate widths or ranges fall back to the Sturges count.
func countFromWidth(values []float64, width float64, n int) int {
	span := stats.Max(values) - stats.Min(values)
	if width <= 0 || span <= 0 {
		return sturges(n)
	}

	return int(math.Ceil(span / width))
}
