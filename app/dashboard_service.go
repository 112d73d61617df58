package app

import (
	"context"
	"fmt"
	"time"

	domain "empinsight/domain/analytics"
	"empinsight/domain/core"
	"empinsight/domain/employee"
	"empinsight/internal"
	"empinsight/internal/analytics"
	"empinsight/internal/errors"

	"golang.org/x/sync/errgroup"
)

// DashboardService computes dashboard reports over one immutable store.
// It holds no mutable state, so one instance may serve concurrent callers.
type DashboardService struct {
	store       *employee.Store
	logger      *internal.Logger
	trendPoints int
	workers     int
}

// Option customizes a DashboardService.
type Option func(*DashboardService)

// WithLogger sets the service logger.
func WithLogger(logger *internal.Logger) Option {
	return func(s *DashboardService) {
		if logger != nil {
			s.logger = logger.With("dashboard")
		}
	}
}

// WithTrendPoints sets how many points each trend panel is sampled at.
func WithTrendPoints(n int) Option {
	return func(s *DashboardService) {
		if n >= 2 && n <= domain.MaxSamplePoints {
			s.trendPoints = n
		}
	}
}

// WithWorkers bounds the number of reports Matrix computes concurrently.
func WithWorkers(n int) Option {
	return func(s *DashboardService) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// NewDashboardService creates a dashboard service over store
func NewDashboardService(store *employee.Store, opts ...Option) *DashboardService {
	s := &DashboardService{
		store:       store,
		logger:      internal.Discard,
		trendPoints: 100,
		workers:     4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bounds describes the values the selection surface may offer.
type Bounds struct {
	Records         int                      `json:"records"`
	Score           employee.ScoreRange      `json:"performance_score"`
	Genders         []employee.Gender        `json:"genders"`
	MaritalStatuses []employee.MaritalStatus `json:"marital_statuses"`
}

// TrendPanel is one fitted field pair with its sampled line and correlation.
// When the fit is impossible for the current filters Line is nil and
// Unavailable says why.
type TrendPanel struct {
	XField      employee.Field    `json:"x_field"`
	YField      employee.Field    `json:"y_field"`
	Line        *domain.TrendLine `json:"line"`
	Points      []domain.Point    `json:"points,omitempty"`
	Correlation domain.Metric     `json:"correlation"`
	Unavailable string            `json:"unavailable,omitempty"`
}

// Report is everything the dashboard shows for one filter selection.
type Report struct {
	ID                core.ReportID          `json:"id"`
	Criteria          employee.Criteria      `json:"criteria"`
	Summary           domain.Summary         `json:"summary"`
	ScoreDistribution []domain.ScoreBucket   `json:"score_distribution"`
	HoursByGender     []domain.GroupedMetric `json:"hours_by_gender"`
	AgeSalary         TrendPanel             `json:"age_salary"`
	HoursPerformance  TrendPanel             `json:"hours_performance"`
	Insights          Insights               `json:"insights"`
}

// Bounds returns the observed score range and the selectable categories.
func (s *DashboardService) Bounds() Bounds {
	return Bounds{
		Records:         s.store.Len(),
		Score:           s.store.ScoreBounds(),
		Genders:         employee.Genders(),
		MaritalStatuses: employee.MaritalStatuses(),
	}
}

// DefaultCriteria returns the identity filter of the underlying store.
func (s *DashboardService) DefaultCriteria() employee.Criteria {
	return s.store.DefaultCriteria()
}

// View validates criteria and applies them to the store.
func (s *DashboardService) View(criteria employee.Criteria) (employee.View, error) {
	if err := criteria.Validate(); err != nil {
		return employee.View{}, errors.Wrap(errors.InvalidInput(err.Error()), "invalid filter criteria")
	}
	return analytics.Apply(s.store, criteria), nil
}

// Build computes the full report for criteria.
func (s *DashboardService) Build(criteria employee.Criteria) (*Report, error) {
	startTime := time.Now()

	view, err := s.View(criteria)
	if err != nil {
		return nil, err
	}

	hoursByGender, err := analytics.GroupMean(view, employee.FieldGender, employee.FieldAverageWorkHours)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group work hours by gender")
	}

	summary := analytics.Summarize(view)
	hoursPerformance := s.panel(view, employee.FieldAverageWorkHours, employee.FieldPerformanceScore)

	report := &Report{
		ID:                core.NewReportID(),
		Criteria:          criteria,
		Summary:           summary,
		ScoreDistribution: analytics.ScoreDistribution(view),
		HoursByGender:     hoursByGender,
		AgeSalary:         s.panel(view, employee.FieldAge, employee.FieldSalary),
		HoursPerformance:  hoursPerformance,
		Insights:          DeriveInsights(summary, hoursPerformance.Correlation),
	}

	s.logger.Debug("Report %s built over %d/%d records in %.2fms", report.ID, view.Len(), s.store.Len(),
		float64(time.Since(startTime).Nanoseconds())/1e6)
	return report, nil
}

// panel fits a trend panel, recording insufficient data as a reason rather
// than an error.
func (s *DashboardService) panel(view employee.View, x, y employee.Field) TrendPanel {
	p := TrendPanel{XField: x, YField: y}

	if r, err := analytics.Pearson(view, x, y); err == nil {
		p.Correlation = domain.Available(r)
	}

	line, err := analytics.FitLine(view, x, y)
	if err != nil {
		p.Unavailable = err.Error()
		return p
	}
	p.Line = &line
	p.Points = line.Sample(s.trendPoints)
	return p
}

// Trend fits one field pair. Unlike the report panels it fails with
// core.ErrInsufficientData when no line can be fitted. points below 2 select
// the configured default; above domain.MaxSamplePoints it is invalid input.
func (s *DashboardService) Trend(criteria employee.Criteria, x, y employee.Field, points int) (TrendPanel, error) {
	if points > domain.MaxSamplePoints {
		return TrendPanel{}, errors.InvalidInput(fmt.Sprintf("points must be at most %d, got %d", domain.MaxSamplePoints, points))
	}
	view, err := s.View(criteria)
	if err != nil {
		return TrendPanel{}, err
	}
	line, err := analytics.FitLine(view, x, y)
	if err != nil {
		return TrendPanel{}, err
	}
	if points < 2 {
		points = s.trendPoints
	}

	p := TrendPanel{XField: x, YField: y, Line: &line, Points: line.Sample(points)}
	if r, err := analytics.Pearson(view, x, y); err == nil {
		p.Correlation = domain.Available(r)
	}
	return p, nil
}

// Correlation returns the Pearson coefficient of two numeric fields.
func (s *DashboardService) Correlation(criteria employee.Criteria, a, b employee.Field) (float64, error) {
	view, err := s.View(criteria)
	if err != nil {
		return 0, err
	}
	return analytics.Pearson(view, a, b)
}

// Groups returns grouped means for the filtered view.
func (s *DashboardService) Groups(criteria employee.Criteria, group, value employee.Field) ([]domain.GroupedMetric, error) {
	view, err := s.View(criteria)
	if err != nil {
		return nil, err
	}
	return analytics.GroupMean(view, group, value)
}

// Segments returns criteria for every gender and marital status combination,
// sentinels included, over the full score range.
func (s *DashboardService) Segments() []employee.Criteria {
	genders := append([]employee.Gender{employee.GenderAny}, employee.Genders()...)
	statuses := append([]employee.MaritalStatus{employee.MaritalAny}, employee.MaritalStatuses()...)

	segments := make([]employee.Criteria, 0, len(genders)*len(statuses))
	for _, g := range genders {
		for _, m := range statuses {
			c := s.store.DefaultCriteria()
			c.Gender = g
			c.MaritalStatus = m
			segments = append(segments, c)
		}
	}
	return segments
}

// Matrix builds one report per criteria concurrently. Results keep the order
// of the input; the first failure cancels the remaining work.
func (s *DashboardService) Matrix(ctx context.Context, criteria []employee.Criteria) ([]*Report, error) {
	reports := make([]*Report, len(criteria))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, c := range criteria {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := s.Build(c)
			if err != nil {
				return errors.Wrapf(err, "segment %d", i)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("Matrix of %d reports built", len(reports))
	return reports, nil
}
