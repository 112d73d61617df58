package employee

import (
	"empinsight/domain/core"
)

// Field names a column of the employee schema. The string value is the
// column header used by tabular sources.
type Field string

const (
	FieldAge               Field = "age"
	FieldGender            Field = "gender"
	FieldMaritalStatus     Field = "marital_status"
	FieldPerformanceScore  Field = "performance_score"
	FieldSatisfactionLevel Field = "satisfaction_level"
	FieldAverageWorkHours  Field = "average_work_hours"
	FieldSalary            Field = "salary"
)

// FieldKind classifies a field as numeric or categorical.
type FieldKind int

const (
	KindUnknown FieldKind = iota
	KindNumeric
	KindCategorical
)

var fieldKinds = map[Field]FieldKind{
	FieldAge:               KindNumeric,
	FieldGender:            KindCategorical,
	FieldMaritalStatus:     KindCategorical,
	FieldPerformanceScore:  KindNumeric,
	FieldSatisfactionLevel: KindNumeric,
	FieldAverageWorkHours:  KindNumeric,
	FieldSalary:            KindNumeric,
}

// Columns returns the required columns of a record source, in schema order.
func Columns() []Field {
	return []Field{
		FieldAge,
		FieldGender,
		FieldMaritalStatus,
		FieldPerformanceScore,
		FieldSatisfactionLevel,
		FieldAverageWorkHours,
		FieldSalary,
	}
}

// Kind reports whether the field is numeric, categorical or unknown.
func (f Field) Kind() FieldKind {
	return fieldKinds[f]
}

func (f Field) String() string { return string(f) }

// ParseField validates a field name.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if f.Kind() == KindUnknown {
		return "", core.NewUnknownFieldError(s)
	}
	return f, nil
}

// RequireNumeric returns ErrUnknownField unless f is a numeric field.
func RequireNumeric(f Field) error {
	if f.Kind() != KindNumeric {
		return core.NewUnknownFieldError(string(f) + " (numeric field expected)")
	}
	return nil
}

// RequireCategorical returns ErrUnknownField unless f is a categorical field.
func RequireCategorical(f Field) error {
	if f.Kind() != KindCategorical {
		return core.NewUnknownFieldError(string(f) + " (categorical field expected)")
	}
	return nil
}
