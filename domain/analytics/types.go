// Package analytics holds the plain, immutable results produced by the
// analytics engine. Values here carry no behaviour beyond evaluation and
// formatting, and are safe to hand to any presentation layer.
package analytics

import (
	"encoding/json"
	"strconv"

	"empinsight/domain/employee"

	"gonum.org/v1/gonum/floats"
)

// NoDataLabel is how an unavailable metric is presented.
const NoDataLabel = "no data"

// Metric is a scalar that may be unavailable for the current filters.
// An unavailable metric is never reported as 0 or NaN.
type Metric struct {
	Value float64
	Valid bool
}

// Available wraps a computed value.
func Available(v float64) Metric { return Metric{Value: v, Valid: true} }

// Unavailable is the "no data" metric.
func Unavailable() Metric { return Metric{} }

func (m Metric) String() string {
	if !m.Valid {
		return NoDataLabel
	}
	return strconv.FormatFloat(m.Value, 'f', 2, 64)
}

// MarshalJSON encodes an unavailable metric as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON accepts null as an unavailable metric.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Unavailable()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Available(v)
	return nil
}

// Summary holds the scalar metrics of a filtered view.
type Summary struct {
	Count            int    `json:"count"`
	NoData           bool   `json:"no_data"`
	MeanPerformance  Metric `json:"mean_performance_score"`
	MeanSatisfaction Metric `json:"mean_satisfaction_level"`
	MeanWorkHours    Metric `json:"mean_average_work_hours"`
}

// GroupedMetric is the mean of a numeric field within one category.
type GroupedMetric struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
}

// ScoreBucket counts records sharing one performance score.
type ScoreBucket struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// Point is one (x, y) sample of a trend line.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MaxSamplePoints bounds how many points a trend line may be sampled at.
const MaxSamplePoints = 10000

// TrendLine is a least-squares fit y = Slope*x + Intercept over a field pair.
// XMin and XMax are the observed x extent of the fitted samples.
type TrendLine struct {
	XField    employee.Field `json:"x_field"`
	YField    employee.Field `json:"y_field"`
	Slope     float64        `json:"slope"`
	Intercept float64        `json:"intercept"`
	N         int            `json:"n"`
	XMin      float64        `json:"x_min"`
	XMax      float64        `json:"x_max"`
}

// Evaluate returns the fitted y at x.
func (t TrendLine) Evaluate(x float64) float64 {
	return t.Slope*x + t.Intercept
}

// Sample evaluates the line at n evenly spaced x values spanning
// [XMin, XMax], both ends included. n is capped at MaxSamplePoints.
func (t TrendLine) Sample(n int) []Point {
	if n > MaxSamplePoints {
		n = MaxSamplePoints
	}
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []Point{{X: t.XMin, Y: t.Evaluate(t.XMin)}}
	}
	xs := floats.Span(make([]float64, n), t.XMin, t.XMax)
	points := make([]Point, n)
	for i, x := range xs {
		points[i] = Point{X: x, Y: t.Evaluate(x)}
	}
	return points
}
