package analytics

import (
	"math"

	"empinsight/domain/core"
	"empinsight/domain/employee"

	"gonum.org/v1/gonum/stat"
)

// Pearson returns the Pearson correlation coefficient of two numeric fields
// over the view, in [-1, 1]. The coefficient is computed from centered sums
// (means first), which keeps large magnitudes such as salaries well
// conditioned.
func Pearson(view employee.View, a, b employee.Field) (float64, error) {
	as, bs, err := pairs(view, a, b)
	if err != nil {
		return 0, err
	}
	if len(as) < 2 {
		return 0, core.NewInsufficientDataError("correlation needs at least 2 records")
	}
	if constant(as) {
		return 0, core.NewInsufficientDataError(string(a) + " has no variance")
	}
	if constant(bs) {
		return 0, core.NewInsufficientDataError(string(b) + " has no variance")
	}

	r := stat.Correlation(as, bs, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, core.NewInsufficientDataError("correlation is undefined for " + string(a) + "/" + string(b))
	}

	// Clamp to [-1, 1] due to floating point precision
	return math.Max(-1, math.Min(1, r)), nil
}
