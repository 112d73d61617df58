package analytics

import (
	"sort"

	domain "empinsight/domain/analytics"
	"empinsight/domain/employee"

	"github.com/montanaflynn/stats"
)

// Summarize computes the record count and the means of performance score,
// satisfaction level and average work hours. On an empty view NoData is set
// and every mean is unavailable.
func Summarize(view employee.View) domain.Summary {
	summary := domain.Summary{Count: view.Len()}
	if view.IsEmpty() {
		summary.NoData = true
		return summary
	}

	summary.MeanPerformance = meanOf(view, employee.FieldPerformanceScore)
	summary.MeanSatisfaction = meanOf(view, employee.FieldSatisfactionLevel)
	summary.MeanWorkHours = meanOf(view, employee.FieldAverageWorkHours)
	return summary
}

func meanOf(view employee.View, f employee.Field) domain.Metric {
	values, err := view.Floats(f)
	if err != nil {
		return domain.Unavailable()
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return domain.Unavailable()
	}
	return domain.Available(mean)
}

// GroupMean groups the view by a categorical field and returns the mean of a
// numeric field per group, highest mean first. Ties are ordered by key so the
// result is deterministic. Only groups with at least one record appear.
func GroupMean(view employee.View, groupField, valueField employee.Field) ([]domain.GroupedMetric, error) {
	if err := employee.RequireCategorical(groupField); err != nil {
		return nil, err
	}
	if err := employee.RequireNumeric(valueField); err != nil {
		return nil, err
	}

	buckets := make(map[string][]float64)
	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		key, _ := r.Category(groupField)
		value, _ := r.Numeric(valueField)
		buckets[key] = append(buckets[key], value)
	}

	groups := make([]domain.GroupedMetric, 0, len(buckets))
	for key, values := range buckets {
		mean, err := stats.Mean(values)
		if err != nil {
			continue
		}
		groups = append(groups, domain.GroupedMetric{Key: key, Count: len(values), Mean: mean})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Mean != groups[j].Mean {
			return groups[i].Mean > groups[j].Mean
		}
		return groups[i].Key < groups[j].Key
	})
	return groups, nil
}
