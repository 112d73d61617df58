package analytics

import (
	"math"
	"testing"

	domain "empinsight/domain/analytics"
	"empinsight/domain/core"
	"empinsight/domain/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, records []employee.Record) *employee.Store {
	t.Helper()
	store, err := employee.NewStore("test", records)
	require.NoError(t, err)
	return store
}

// staffRecords is a small mixed population with scores 1, 2 and 4 (never 3).
func staffRecords() []employee.Record {
	return []employee.Record{
		{Age: 25, Gender: employee.Female, MaritalStatus: employee.Single, PerformanceScore: 4, SatisfactionLevel: 4.5, AverageWorkHours: 2100, Salary: 52000},
		{Age: 38, Gender: employee.Male, MaritalStatus: employee.Married, PerformanceScore: 2, SatisfactionLevel: 3.1, AverageWorkHours: 1950, Salary: 61000},
		{Age: 44, Gender: employee.Female, MaritalStatus: employee.Married, PerformanceScore: 1, SatisfactionLevel: 2.0, AverageWorkHours: 1800, Salary: 70000},
		{Age: 51, Gender: employee.Male, MaritalStatus: employee.Divorced, PerformanceScore: 4, SatisfactionLevel: 4.0, AverageWorkHours: 2250, Salary: 83000},
		{Age: 29, Gender: employee.Male, MaritalStatus: employee.Single, PerformanceScore: 2, SatisfactionLevel: 3.4, AverageWorkHours: 2000, Salary: 48000},
	}
}

func ages(v employee.View) []int {
	out := make([]int, v.Len())
	for i := range out {
		out[i] = v.At(i).Age
	}
	return out
}

func TestApply_IdentityFilter(t *testing.T) {
	store := newStore(t, staffRecords())

	view := Apply(store, store.DefaultCriteria())

	assert.Equal(t, store.Len(), view.Len())
	assert.Equal(t, store.All().Records(), view.Records())
}

func TestApply_PredicatesAndOrder(t *testing.T) {
	store := newStore(t, staffRecords())
	bounds := store.ScoreBounds()

	tests := []struct {
		name     string
		criteria employee.Criteria
		want     []int
	}{
		{"gender", employee.Criteria{Gender: employee.Male, Score: bounds}, []int{38, 51, 29}},
		{"score range inclusive", employee.Criteria{Score: employee.ScoreRange{Min: 2, Max: 4}}, []int{25, 38, 51, 29}},
		{"marital status", employee.Criteria{MaritalStatus: employee.Married, Score: bounds}, []int{38, 44}},
		{"all predicates", employee.Criteria{Gender: employee.Male, MaritalStatus: employee.Single, Score: employee.ScoreRange{Min: 2, Max: 2}}, []int{29}},
		{"no matches", employee.Criteria{Gender: employee.Female, MaritalStatus: employee.Widowed, Score: bounds}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Apply(store, tt.criteria)
			assert.LessOrEqual(t, view.Len(), store.Len())
			assert.Equal(t, tt.want, ages(view))

			idx := view.Indices()
			for i := 1; i < len(idx); i++ {
				assert.Less(t, idx[i-1], idx[i], "relative order must be preserved")
			}
		})
	}
}

func TestApply_IsDeterministic(t *testing.T) {
	store := newStore(t, staffRecords())
	c := employee.Criteria{Gender: employee.Male, Score: store.ScoreBounds()}
	assert.Equal(t, Apply(store, c).Indices(), Apply(store, c).Indices())
}

func TestSummarize(t *testing.T) {
	store := newStore(t, staffRecords())

	s := Summarize(store.All())

	assert.Equal(t, 5, s.Count)
	assert.False(t, s.NoData)
	require.True(t, s.MeanPerformance.Valid)
	assert.InDelta(t, 13.0/5, s.MeanPerformance.Value, 1e-9)
	assert.InDelta(t, 17.0/5, s.MeanSatisfaction.Value, 1e-9)
	assert.InDelta(t, 10100.0/5, s.MeanWorkHours.Value, 1e-9)
}

func TestSummarize_EmptyViewReportsNoData(t *testing.T) {
	store := newStore(t, staffRecords())

	view := Apply(store, employee.Criteria{Score: employee.ScoreRange{Min: 3, Max: 3}})
	require.True(t, view.IsEmpty())

	s := Summarize(view)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.NoData)
	assert.False(t, s.MeanPerformance.Valid)
	assert.False(t, s.MeanSatisfaction.Valid)
	assert.False(t, s.MeanWorkHours.Valid)
	assert.Equal(t, domain.NoDataLabel, s.MeanWorkHours.String())
}

func TestGroupMean_SortedDescending(t *testing.T) {
	store := newStore(t, staffRecords())

	groups, err := GroupMean(store.All(), employee.FieldGender, employee.FieldAverageWorkHours)
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "M", groups[0].Key)
	assert.Equal(t, 3, groups[0].Count)
	assert.InDelta(t, 6200.0/3, groups[0].Mean, 1e-9)
	assert.Equal(t, "F", groups[1].Key)
	assert.InDelta(t, 1950.0, groups[1].Mean, 1e-9)
}

func TestGroupMean_OnlyPresentGroups(t *testing.T) {
	store := newStore(t, staffRecords())

	view := Apply(store, employee.Criteria{Gender: employee.Female, Score: store.ScoreBounds()})
	groups, err := GroupMean(view, employee.FieldGender, employee.FieldAverageWorkHours)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "F", groups[0].Key)

	for _, g := range groups {
		assert.Positive(t, g.Count)
	}

	empty, err := GroupMean(employee.View{}, employee.FieldGender, employee.FieldSalary)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGroupMean_TiesOrderedByKey(t *testing.T) {
	store := newStore(t, []employee.Record{
		{Gender: employee.Male, MaritalStatus: employee.Widowed, Salary: 10},
		{Gender: employee.Female, MaritalStatus: employee.Divorced, Salary: 10},
	})
	groups, err := GroupMean(store.All(), employee.FieldMaritalStatus, employee.FieldSalary)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Divorced", groups[0].Key)
	assert.Equal(t, "Widowed", groups[1].Key)
}

func TestGroupMean_RejectsWrongFields(t *testing.T) {
	store := newStore(t, staffRecords())

	_, err := GroupMean(store.All(), employee.FieldSalary, employee.FieldAge)
	assert.ErrorIs(t, err, core.ErrUnknownField)

	_, err = GroupMean(store.All(), employee.FieldGender, employee.FieldMaritalStatus)
	assert.ErrorIs(t, err, core.ErrUnknownField)
}

func TestScoreDistribution(t *testing.T) {
	store := newStore(t, staffRecords())

	buckets := ScoreDistribution(store.All())
	assert.Equal(t, []domain.ScoreBucket{
		{Score: 1, Count: 1},
		{Score: 2, Count: 2},
		{Score: 4, Count: 2},
	}, buckets)

	assert.Empty(t, ScoreDistribution(employee.View{}))
}

func ageSalaryStore(t *testing.T) *employee.Store {
	return newStore(t, []employee.Record{
		{Age: 30, Salary: 1000},
		{Age: 40, Salary: 2000},
		{Age: 50, Salary: 3000},
	})
}

func TestFitLine_KnownLine(t *testing.T) {
	line, err := FitLine(ageSalaryStore(t).All(), employee.FieldAge, employee.FieldSalary)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, line.Slope, 1e-9)
	assert.InDelta(t, -2000.0, line.Intercept, 1e-6)
	assert.Equal(t, 3, line.N)
	assert.Equal(t, 30.0, line.XMin)
	assert.Equal(t, 50.0, line.XMax)
	assert.Equal(t, employee.FieldAge, line.XField)
	assert.Equal(t, employee.FieldSalary, line.YField)
}

func TestFitLine_TwoPointsReproduceLine(t *testing.T) {
	store := newStore(t, []employee.Record{
		{AverageWorkHours: 1800, PerformanceScore: 1},
		{AverageWorkHours: 2200, PerformanceScore: 4},
	})

	line, err := FitLine(store.All(), employee.FieldAverageWorkHours, employee.FieldPerformanceScore)
	require.NoError(t, err)

	assert.InDelta(t, (4.0-1.0)/(2200.0-1800.0), line.Slope, 1e-12)
	assert.InDelta(t, 1.0, line.Evaluate(1800), 1e-9)
	assert.InDelta(t, 4.0, line.Evaluate(2200), 1e-9)
}

func TestFitLine_InsufficientData(t *testing.T) {
	single := newStore(t, []employee.Record{{Age: 30, Salary: 1000}})
	_, err := FitLine(single.All(), employee.FieldAge, employee.FieldSalary)
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	_, err = FitLine(employee.View{}, employee.FieldAge, employee.FieldSalary)
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	sameAge := newStore(t, []employee.Record{{Age: 30, Salary: 1000}, {Age: 30, Salary: 2000}})
	_, err = FitLine(sameAge.All(), employee.FieldAge, employee.FieldSalary)
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	_, err = FitLine(sameAge.All(), employee.FieldGender, employee.FieldSalary)
	assert.ErrorIs(t, err, core.ErrUnknownField)
}

func TestPearson_PerfectlyLinear(t *testing.T) {
	r, err := Pearson(ageSalaryStore(t).All(), employee.FieldAge, employee.FieldSalary)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)
}

func TestPearson_NegativeAndBounded(t *testing.T) {
	store := newStore(t, []employee.Record{
		{AverageWorkHours: 1800, PerformanceScore: 4},
		{AverageWorkHours: 2000, PerformanceScore: 3},
		{AverageWorkHours: 2200, PerformanceScore: 2},
		{AverageWorkHours: 2400, PerformanceScore: 1},
	})
	r, err := Pearson(store.All(), employee.FieldAverageWorkHours, employee.FieldPerformanceScore)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)

	r, err = Pearson(newStore(t, staffRecords()).All(), employee.FieldAge, employee.FieldSalary)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r, -1.0)
	assert.LessOrEqual(t, r, 1.0)
}

func TestPearson_LargeMagnitudesStayStable(t *testing.T) {
	records := make([]employee.Record, 0, 50)
	for i := 0; i < 50; i++ {
		records = append(records, employee.Record{
			Age:    20 + i,
			Salary: 1e12 + float64(i)*1000,
		})
	}
	r, err := Pearson(newStore(t, records).All(), employee.FieldAge, employee.FieldSalary)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(r))
	assert.InDelta(t, 1.0, r, 1e-9)
}

func TestPearson_InsufficientData(t *testing.T) {
	flat := newStore(t, []employee.Record{
		{Age: 30, Salary: 1000},
		{Age: 40, Salary: 1000},
		{Age: 50, Salary: 1000},
	})
	_, err := Pearson(flat.All(), employee.FieldAge, employee.FieldSalary)
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	_, err = Pearson(flat.All(), employee.FieldSalary, employee.FieldAge)
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	_, err = Pearson(flat.Select([]int{0}), employee.FieldAge, employee.FieldSalary)
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	_, err = Pearson(employee.View{}, employee.FieldAge, employee.FieldSalary)
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}
