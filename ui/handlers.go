package ui

import (
	"net/http"

	"empinsight/domain/employee"
	"empinsight/internal/errors"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError writes {"error": {...}} with the status implied by the error code.
func (s *Server) respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": errorBody{Code: code, Message: err.Error()}})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleBounds(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Bounds())
}

func (s *Server) handleReport(c *gin.Context) {
	criteria, err := s.criteriaFromQuery(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	report, err := s.service.Build(criteria)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleRecords(c *gin.Context) {
	criteria, err := s.criteriaFromQuery(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	view, err := s.service.View(criteria)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"criteria": criteria,
		"count":    view.Len(),
		"records":  view.Records(),
	})
}

func (s *Server) handleTrend(c *gin.Context) {
	criteria, err := s.criteriaFromQuery(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	x, err := fieldQuery(c, "x", employee.FieldAge)
	if err != nil {
		s.respondError(c, err)
		return
	}
	y, err := fieldQuery(c, "y", employee.FieldSalary)
	if err != nil {
		s.respondError(c, err)
		return
	}
	points, err := intQuery(c, "points", 0)
	if err != nil {
		s.respondError(c, err)
		return
	}

	panel, err := s.service.Trend(criteria, x, y, points)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, panel)
}

func (s *Server) handleCorrelation(c *gin.Context) {
	criteria, err := s.criteriaFromQuery(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	a, err := fieldQuery(c, "a", employee.FieldAverageWorkHours)
	if err != nil {
		s.respondError(c, err)
		return
	}
	b, err := fieldQuery(c, "b", employee.FieldPerformanceScore)
	if err != nil {
		s.respondError(c, err)
		return
	}

	r, err := s.service.Correlation(criteria, a, b)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"a": a, "b": b, "pearson": r})
}

func (s *Server) handleGroups(c *gin.Context) {
	criteria, err := s.criteriaFromQuery(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	group, err := fieldQuery(c, "group", employee.FieldGender)
	if err != nil {
		s.respondError(c, err)
		return
	}
	value, err := fieldQuery(c, "value", employee.FieldAverageWorkHours)
	if err != nil {
		s.respondError(c, err)
		return
	}

	groups, err := s.service.Groups(criteria, group, value)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group, "value": value, "groups": groups})
}
