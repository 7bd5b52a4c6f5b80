package stats

import "math"

// Silverman's rule-of-thumb constant for the gaussian kernel.
const silvermanFactor = 1.06

// gridPadding extends the evaluation grid beyond the sample range, in bandwidths.
const gridPadding = 3.0

// KDEPoint is a single evaluation of a kernel density estimate.
type KDEPoint struct {
	X       float64
	Density float64
}

// Bandwidth returns Silverman's rule-of-thumb bandwidth for values:
// 1.06 * min(σ, IQR/1.34) * n^(-1/5). Falls back to σ when the IQR is
// degenerate, and to 1 when the sample has no spread at all.
func Bandwidth(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 1
	}

	_, sigma := MeanStdDev(values)

	spread := sigma

	iqr := IQR(values) / 1.34
	if iqr > 0 && iqr < spread {
		spread = iqr
	}

	if spread <= 0 {
		return 1
	}

	return silvermanFactor * spread * math.Pow(float64(n), -0.2)
}

// KDE evaluates a gaussian kernel density estimate of values at points
// evenly spaced grid positions spanning the sample range padded by three
// bandwidths. bandwidth <= 0 selects Silverman's rule via Bandwidth.
// Returns an empty slice when values is empty or points < 2.
func KDE(values []float64, points int, bandwidth float64) []KDEPoint {
	if len(values) == 0 || points < 2 {
		return nil
	}

	if bandwidth <= 0 {
		bandwidth = Bandwidth(values)
	}

	lo := Min(values) - gridPadding*bandwidth
	hi := Max(values) + gridPadding*bandwidth
	step := (hi - lo) / float64(points-1)

	norm := 1 / (float64(len(values)) * bandwidth * math.Sqrt(2*math.Pi))

	out := make([]KDEPoint, points)

	for i := 0; i < points; i++ {
		x := lo + float64(i)*step

		var sum float64

		for _, v := range values {
			z := (x - v) / bandwidth
			sum += math.Exp(-0.5 * z * z)
		}

		out[i] = KDEPoint{X: x, Density: norm * sum}
	}

	return out
}
