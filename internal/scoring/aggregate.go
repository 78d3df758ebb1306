package scoring

import "math"

// Composite returns round(Σ score×weight / 100), accumulated in slice order.
func Composite(dims []ScoreDimension) int {
	sum := 0
	for _, d := range dims {
		sum += d.Score * d.Weight
	}
	return clampScore(math.Round(float64(sum) / 100))
}
