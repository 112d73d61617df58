package app

import (
	"empinsight/domain/analytics"
)

// PerformanceTier grades the mean performance score of a selection.
type PerformanceTier string

const (
	TierExcellent   PerformanceTier = "excellent"
	TierGood        PerformanceTier = "good"
	TierAcceptable  PerformanceTier = "acceptable"
	TierUnavailable PerformanceTier = "unavailable"
)

// SatisfactionOutlook grades the mean satisfaction level of a selection.
type SatisfactionOutlook string

const (
	OutlookPositive       SatisfactionOutlook = "positive"
	OutlookNeedsAttention SatisfactionOutlook = "needs_attention"
	OutlookUnavailable    SatisfactionOutlook = "unavailable"
)

// Tier thresholds on the performance and satisfaction scales.
const (
	ExcellentPerformance = 3.5
	GoodPerformance      = 2.5
	PositiveSatisfaction = 4.0
)

// Insights is the data behind the conclusions panel. It carries grades and
// the figures they were derived from; wording is left to the presentation.
type Insights struct {
	PerformanceTier             PerformanceTier     `json:"performance_tier"`
	MeanPerformance             analytics.Metric    `json:"mean_performance_score"`
	SatisfactionOutlook         SatisfactionOutlook `json:"satisfaction_outlook"`
	MeanSatisfaction            analytics.Metric    `json:"mean_satisfaction_level"`
	MeanWorkHours               analytics.Metric    `json:"mean_average_work_hours"`
	HoursPerformanceCorrelation analytics.Metric    `json:"hours_performance_correlation"`
}

// DeriveInsights grades a summary. Unavailable metrics yield unavailable grades.
func DeriveInsights(summary analytics.Summary, hoursPerformance analytics.Metric) Insights {
	return Insights{
		PerformanceTier:             gradePerformance(summary.MeanPerformance),
		MeanPerformance:             summary.MeanPerformance,
		SatisfactionOutlook:         gradeSatisfaction(summary.MeanSatisfaction),
		MeanSatisfaction:            summary.MeanSatisfaction,
		MeanWorkHours:               summary.MeanWorkHours,
		HoursPerformanceCorrelation: hoursPerformance,
	}
}

func gradePerformance(m analytics.Metric) PerformanceTier {
	switch {
	case !m.Valid:
		return TierUnavailable
	case m.Value >= ExcellentPerformance:
		return TierExcellent
	case m.Value >= GoodPerformance:
		return TierGood
	}
	return TierAcceptable
}

func gradeSatisfaction(m analytics.Metric) SatisfactionOutlook {
	switch {
	case !m.Valid:
		return OutlookUnavailable
	case m.Value >= PositiveSatisfaction:
		return OutlookPositive
	}
	return OutlookNeedsAttention
}
