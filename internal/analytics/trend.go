package analytics

import (
	domain "empinsight/domain/analytics"
	"empinsight/domain/core"
	"empinsight/domain/employee"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FitLine fits y = m*x + b by ordinary least squares over the (x, y) pairs of
// the view. At least two records with non-constant x are required.
func FitLine(view employee.View, x, y employee.Field) (domain.TrendLine, error) {
	xs, ys, err := pairs(view, x, y)
	if err != nil {
		return domain.TrendLine{}, err
	}
	if len(xs) < 2 {
		return domain.TrendLine{}, core.NewInsufficientDataError("trend line needs at least 2 records")
	}
	if constant(xs) {
		return domain.TrendLine{}, core.NewInsufficientDataError(string(x) + " has no variance")
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return domain.TrendLine{
		XField:    x,
		YField:    y,
		Slope:     slope,
		Intercept: intercept,
		N:         len(xs),
		XMin:      floats.Min(xs),
		XMax:      floats.Max(xs),
	}, nil
}

func pairs(view employee.View, x, y employee.Field) ([]float64, []float64, error) {
	xs, err := view.Floats(x)
	if err != nil {
		return nil, nil, err
	}
	ys, err := view.Floats(y)
	if err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

// constant reports whether every value equals the first.
func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
