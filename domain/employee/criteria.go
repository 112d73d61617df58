package employee

import (
	"fmt"
)

// ScoreRange is a closed performance score interval.
type ScoreRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether score lies in [Min, Max].
func (r ScoreRange) Contains(score int) bool {
	return score >= r.Min && score <= r.Max
}

// Criteria is the active set of filter predicates. Zero-valued Gender and
// MaritalStatus mean "no constraint".
type Criteria struct {
	Gender        Gender        `json:"gender,omitempty"`
	Score         ScoreRange    `json:"performance_score"`
	MaritalStatus MaritalStatus `json:"marital_status,omitempty"`
}

// Validate checks the invariants the selection surface is expected to uphold.
func (c Criteria) Validate() error {
	if c.Score.Min > c.Score.Max {
		return fmt.Errorf("performance score range [%d,%d] has min > max", c.Score.Min, c.Score.Max)
	}
	switch c.Gender {
	case GenderAny, Male, Female:
	default:
		return fmt.Errorf("unsupported gender %q", c.Gender)
	}
	if c.MaritalStatus != MaritalAny {
		found := false
		for _, m := range MaritalStatuses() {
			if c.MaritalStatus == m {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unsupported marital status %q", c.MaritalStatus)
		}
	}
	return nil
}

// Matches applies every active predicate: gender, then score range, then
// marital status.
func (c Criteria) Matches(r Record) bool {
	if c.Gender != GenderAny && r.Gender != c.Gender {
		return false
	}
	if !c.Score.Contains(r.PerformanceScore) {
		return false
	}
	if c.MaritalStatus != MaritalAny && r.MaritalStatus != c.MaritalStatus {
		return false
	}
	return true
}
