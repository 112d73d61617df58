package analytics

import (
	"sort"

	domain "empinsight/domain/analytics"
	"empinsight/domain/employee"
)

// ScoreDistribution counts records per performance score, ascending by score.
// Scores with no records in the view are omitted.
func ScoreDistribution(view employee.View) []domain.ScoreBucket {
	counts := make(map[int]int)
	for i := 0; i < view.Len(); i++ {
		counts[view.At(i).PerformanceScore]++
	}

	buckets := make([]domain.ScoreBucket, 0, len(counts))
	for score, count := range counts {
		buckets = append(buckets, domain.ScoreBucket{Score: score, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Score < buckets[j].Score })
	return buckets
}
