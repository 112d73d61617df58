package employee

import (
	"errors"

	"empinsight/domain/core"
)

// Store is the immutable in-memory table of employee records. It is built
// once by the entry point and handed to every engine call; nothing mutates it
// afterwards, so concurrent readers need no locking.
type Store struct {
	source  string
	records []Record
	bounds  ScoreRange
}

// NewStore copies records into a new store and derives the performance score
// bounds from the whole collection. An empty collection is malformed: its
// bounds would be undefined.
func NewStore(source string, records []Record) (*Store, error) {
	if len(records) == 0 {
		return nil, core.NewMalformedError(source, 0, "", errors.New("no data rows"))
	}

	owned := make([]Record, len(records))
	copy(owned, records)

	bounds := ScoreRange{Min: owned[0].PerformanceScore, Max: owned[0].PerformanceScore}
	for _, r := range owned[1:] {
		if r.PerformanceScore < bounds.Min {
			bounds.Min = r.PerformanceScore
		}
		if r.PerformanceScore > bounds.Max {
			bounds.Max = r.PerformanceScore
		}
	}

	return &Store{source: source, records: owned, bounds: bounds}, nil
}

// Source names where the records were loaded from.
func (s *Store) Source() string { return s.source }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// At returns the i-th record.
func (s *Store) At(i int) Record { return s.records[i] }

// ScoreBounds returns the observed performance score range of the whole store.
func (s *Store) ScoreBounds() ScoreRange { return s.bounds }

// DefaultCriteria returns the identity filter: no gender or marital status
// constraint and the full observed score range.
func (s *Store) DefaultCriteria() Criteria {
	return Criteria{
		Gender:        GenderAny,
		Score:         s.bounds,
		MaritalStatus: MaritalAny,
	}
}

// All returns a view over every record in the store.
func (s *Store) All() View {
	idx := make([]int, len(s.records))
	for i := range idx {
		idx[i] = i
	}
	return View{store: s, idx: idx}
}

// Select returns a view over the given record indices. Callers must pass
// indices in ascending order to keep the original relative order.
func (s *Store) Select(idx []int) View {
	return View{store: s, idx: idx}
}
