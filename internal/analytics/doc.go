// Package analytics is the filtering and analytics engine.
//
// filter.go narrows a Store to a View with Apply. aggregate.go computes the
// scalar summary and grouped means, distribution.go the performance score
// histogram. trend.go fits least-squares lines and correlation.go computes
// Pearson coefficients.
//
// Every function here is a pure function of its arguments: the Store is
// passed in explicitly and never mutated. Computations that are undefined for
// the given view return core.ErrInsufficientData (or an unavailable Metric)
// instead of dividing by zero.
package analytics
