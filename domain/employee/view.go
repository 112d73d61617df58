package employee

// View is an ordered subsequence of a Store, held as indices into it.
// The zero View is empty.
type View struct {
	store *Store
	idx   []int
}

// Len returns the number of records in the view.
func (v View) Len() int { return len(v.idx) }

// IsEmpty reports whether the view has no records.
func (v View) IsEmpty() bool { return len(v.idx) == 0 }

// At returns the i-th record of the view.
func (v View) At(i int) Record { return v.store.records[v.idx[i]] }

// Indices returns a copy of the store positions selected by the view.
func (v View) Indices() []int {
	out := make([]int, len(v.idx))
	copy(out, v.idx)
	return out
}

// Records materializes the view.
func (v View) Records() []Record {
	out := make([]Record, len(v.idx))
	for i, j := range v.idx {
		out[i] = v.store.records[j]
	}
	return out
}

// Floats extracts a numeric column in view order.
func (v View) Floats(f Field) ([]float64, error) {
	if err := RequireNumeric(f); err != nil {
		return nil, err
	}
	out := make([]float64, len(v.idx))
	for i, j := range v.idx {
		out[i], _ = v.store.records[j].Numeric(f)
	}
	return out, nil
}
