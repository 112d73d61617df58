package analytics

import (
	"empinsight/domain/employee"
)

// Apply returns the records of store that satisfy every active predicate in
// criteria, in their original order. An empty result is valid output.
func Apply(store *employee.Store, criteria employee.Criteria) employee.View {
	n := store.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if criteria.Matches(store.At(i)) {
			indices = append(indices, i)
		}
	}
	return store.Select(indices)
}
