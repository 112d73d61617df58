// Package tabular loads employee records from CSV and XLSX files into an
// immutable employee.Store, validating the schema once at load time.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"empinsight/domain/core"
	"empinsight/domain/employee"
	"empinsight/internal"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// Reader handles reading Excel and CSV employee sources
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	logger   *internal.Logger
}

// Option customizes a Reader.
type Option func(*Reader)

// WithSheet selects the worksheet read from XLSX sources. The default is the
// first sheet of the workbook.
func WithSheet(sheet string) Option {
	return func(r *Reader) { r.sheet = sheet }
}

// WithLogger sets the logger used for load progress.
func WithLogger(logger *internal.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger.With("tabular")
		}
	}
}

// NewReader creates a reader for path. Files ending in .xlsx are read as
// workbooks, everything else as CSV.
func NewReader(filePath string, opts ...Option) *Reader {
	fileType := "csv"
	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		fileType = "xlsx"
	}
	r := &Reader{filePath: filePath, fileType: fileType, logger: internal.Discard}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads the source and returns the record store. Errors are
// *core.LoadError values of kind LoadNotFound or LoadMalformed.
func (r *Reader) Load() (*employee.Store, error) {
	startTime := time.Now()
	r.logger.Debug("Starting to read %s file: %s", r.fileType, r.filePath)

	f, err := os.Open(r.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.NewNotFoundError(r.filePath, err)
		}
		return nil, core.NewMalformedError(r.filePath, 0, "", err)
	}
	defer f.Close()

	var rows [][]string
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows(f)
	default:
		rows, err = readCSVRows(f)
	}
	if err != nil {
		return nil, core.NewMalformedError(r.filePath, 0, "", err)
	}

	store, err := Parse(r.filePath, rows)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Loaded %d records from %s in %.2fms", store.Len(), r.filePath,
		float64(time.Since(startTime).Nanoseconds())/1e6)
	return store, nil
}

// LoadCSV reads CSV records from an arbitrary reader.
func LoadCSV(source string, in io.Reader) (*employee.Store, error) {
	rows, err := readCSVRows(in)
	if err != nil {
		return nil, core.NewMalformedError(source, 0, "", err)
	}
	return Parse(source, rows)
}

func readCSVRows(in io.Reader) ([][]string, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	return rows, nil
}

// readExcelRows reads every row of the configured sheet
func (r *Reader) readExcelRows(in io.Reader) ([][]string, error) {
	wb, err := excelize.OpenReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer wb.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	r.logger.Debug("Sheet %s read (%d rows)", sheet, len(rows))
	return rows, nil
}

// Parse converts raw rows (header first) into a store. The header must name
// every employee column; extra columns are ignored. A byte order mark on the
// first header cell is dropped.
func Parse(source string, rows [][]string) (*employee.Store, error) {
	if len(rows) == 0 {
		return nil, core.NewMalformedError(source, 0, "", errors.New("missing header row"))
	}

	positions, err := columnPositions(rows[0])
	if err != nil {
		return nil, core.NewMalformedError(source, 0, "", err)
	}

	records := make([]employee.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		rec, column, err := parseRow(row, positions)
		if err != nil {
			return nil, core.NewMalformedError(source, i+1, column, err)
		}
		records = append(records, rec)
	}

	return employee.NewStore(source, records)
}

func columnPositions(header []string) (map[employee.Field]int, error) {
	positions := make(map[employee.Field]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		f := employee.Field(strings.TrimSpace(name))
		if f.Kind() == employee.KindUnknown {
			continue
		}
		if _, dup := positions[f]; dup {
			return nil, fmt.Errorf("duplicate column %q", f)
		}
		positions[f] = i
	}

	var missing []string
	for _, f := range employee.Columns() {
		if _, ok := positions[f]; !ok {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return positions, nil
}

func parseRow(row []string, positions map[employee.Field]int) (employee.Record, string, error) {
	cell := func(f employee.Field) string {
		if p := positions[f]; p < len(row) {
			return row[p]
		}
		return ""
	}

	var (
		rec employee.Record
		err error
	)
	if rec.Age, err = parseInt(cell(employee.FieldAge)); err != nil {
		return rec, string(employee.FieldAge), err
	}
	if rec.PerformanceScore, err = parseInt(cell(employee.FieldPerformanceScore)); err != nil {
		return rec, string(employee.FieldPerformanceScore), err
	}
	if rec.SatisfactionLevel, err = parseFloat(cell(employee.FieldSatisfactionLevel)); err != nil {
		return rec, string(employee.FieldSatisfactionLevel), err
	}
	if rec.AverageWorkHours, err = parseFloat(cell(employee.FieldAverageWorkHours)); err != nil {
		return rec, string(employee.FieldAverageWorkHours), err
	}
	if rec.Salary, err = parseFloat(cell(employee.FieldSalary)); err != nil {
		return rec, string(employee.FieldSalary), err
	}

	rec.Gender = employee.Gender(strings.TrimSpace(cell(employee.FieldGender)))
	rec.MaritalStatus = employee.MaritalStatus(strings.TrimSpace(cell(employee.FieldMaritalStatus)))
	return rec, "", nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

// parseInt accepts plain integers and integral floats such as "3.0".
func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
	if f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return int(f), nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
