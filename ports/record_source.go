package ports

import (
	"empinsight/domain/employee"
)

// RecordSource produces the employee store once at startup. Implementations
// return *core.LoadError values so callers can tell a missing source from a
// malformed one.
type RecordSource interface {
	Load() (*employee.Store, error)
}
