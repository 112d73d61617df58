package ui

import (
	"fmt"
	"strconv"
	"strings"

	"empinsight/domain/employee"
	"empinsight/internal/errors"

	"github.com/gin-gonic/gin"
)

// anyValue is accepted, like an empty value, as "no constraint".
const anyValue = "all"

// criteriaFromQuery reads gender, marital_status, score_min and score_max.
// Missing score bounds default to the observed range of the store.
func (s *Server) criteriaFromQuery(c *gin.Context) (employee.Criteria, error) {
	criteria := s.service.DefaultCriteria()

	if g := strings.TrimSpace(c.Query("gender")); g != "" && !strings.EqualFold(g, anyValue) {
		criteria.Gender = employee.Gender(strings.ToUpper(g))
	}
	if m := strings.TrimSpace(c.Query("marital_status")); m != "" && !strings.EqualFold(m, anyValue) {
		criteria.MaritalStatus = employee.MaritalStatus(m)
	}

	var err error
	if criteria.Score.Min, err = intQuery(c, "score_min", criteria.Score.Min); err != nil {
		return criteria, err
	}
	if criteria.Score.Max, err = intQuery(c, "score_max", criteria.Score.Max); err != nil {
		return criteria, err
	}

	if err := criteria.Validate(); err != nil {
		return criteria, errors.InvalidInput(err.Error())
	}
	return criteria, nil
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("%s must be an integer, got %q", key, raw))
	}
	return v, nil
}

func fieldQuery(c *gin.Context, key string, fallback employee.Field) (employee.Field, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	f, err := employee.ParseField(raw)
	if err != nil {
		return "", errors.InvalidInput(fmt.Sprintf("%s: %v", key, err))
	}
	return f, nil
}
