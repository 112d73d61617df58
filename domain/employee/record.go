package employee

// Gender is the categorical gender code as it appears in the source data.
type Gender string

const (
	// GenderAny is the "no constraint" sentinel used by Criteria.
	GenderAny Gender = ""
	Male      Gender = "M"
	Female    Gender = "F"
)

// MaritalStatus is one of the fixed marital status categories.
type MaritalStatus string

const (
	// MaritalAny is the "no constraint" sentinel used by Criteria.
	MaritalAny MaritalStatus = ""
	Single     MaritalStatus = "Single"
	Married    MaritalStatus = "Married"
	Divorced   MaritalStatus = "Divorced"
	Separated  MaritalStatus = "Separated"
	Widowed    MaritalStatus = "Widowed"
)

// Genders lists the selectable gender codes in display order.
func Genders() []Gender {
	return []Gender{Male, Female}
}

// MaritalStatuses lists the selectable marital statuses in display order.
func MaritalStatuses() []MaritalStatus {
	return []MaritalStatus{Single, Married, Divorced, Separated, Widowed}
}

// Record is one employee row. Records are values and never mutated after loading.
type Record struct {
	Age               int           `json:"age"`
	Gender            Gender        `json:"gender"`
	MaritalStatus     MaritalStatus `json:"marital_status"`
	PerformanceScore  int           `json:"performance_score"`
	SatisfactionLevel float64       `json:"satisfaction_level"`
	AverageWorkHours  float64       `json:"average_work_hours"`
	Salary            float64       `json:"salary"`
}

// Numeric returns the value of a numeric field. ok is false for categorical
// or unknown fields.
func (r Record) Numeric(f Field) (value float64, ok bool) {
	switch f {
	case FieldAge:
		return float64(r.Age), true
	case FieldPerformanceScore:
		return float64(r.PerformanceScore), true
	case FieldSatisfactionLevel:
		return r.SatisfactionLevel, true
	case FieldAverageWorkHours:
		return r.AverageWorkHours, true
	case FieldSalary:
		return r.Salary, true
	}
	return 0, false
}

// Category returns the value of a categorical field.
func (r Record) Category(f Field) (value string, ok bool) {
	switch f {
	case FieldGender:
		return string(r.Gender), true
	case FieldMaritalStatus:
		return string(r.MaritalStatus), true
	}
	return "", false
}
