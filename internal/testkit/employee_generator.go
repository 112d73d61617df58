package testkit

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"empinsight/domain/employee"

	"github.com/xuri/excelize/v2"
)

// EmployeeGeneratorConfig configures the employee data generator
type EmployeeGeneratorConfig struct {
	Rows       int     `json:"rows"`
	MinAge     int     `json:"min_age"`
	MaxAge     int     `json:"max_age"`
	MinScore   int     `json:"min_score"`
	MaxScore   int     `json:"max_score"`
	BaseSalary float64 `json:"base_salary"`
	Seed       int64   `json:"seed"`
}

// DefaultEmployeeConfig returns sensible defaults for employee data generation
func DefaultEmployeeConfig() EmployeeGeneratorConfig {
	return EmployeeGeneratorConfig{
		Rows:       200,
		MinAge:     21,
		MaxAge:     64,
		MinScore:   1,
		MaxScore:   4,
		BaseSalary: 28000,
		Seed:       42,
	}
}

// EmployeeGenerator generates realistic employee performance records. Salary
// rises with age and performance loosely tracks work hours, so trend and
// correlation outputs are non-trivial.
type EmployeeGenerator struct {
	config EmployeeGeneratorConfig
	rng    *rand.Rand
}

// NewEmployeeGenerator creates a new employee generator
func NewEmployeeGenerator(config EmployeeGeneratorConfig) *EmployeeGenerator {
	return &EmployeeGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns config.Rows records. The same seed yields the same records.
func (g *EmployeeGenerator) Generate() []employee.Record {
	if g.config.Rows <= 0 {
		return nil
	}
	records := make([]employee.Record, 0, g.config.Rows)
	for i := 0; i < g.config.Rows; i++ {
		records = append(records, g.record())
	}
	return records
}

func (g *EmployeeGenerator) record() employee.Record {
	age := g.config.MinAge + g.rng.Intn(g.config.MaxAge-g.config.MinAge+1)

	hours := math.Round(1750 + g.rng.Float64()*650)
	// Longer hours nudge the score up; noise keeps the correlation imperfect
	span := float64(g.config.MaxScore - g.config.MinScore)
	raw := float64(g.config.MinScore) + span*((hours-1750)/650)*0.6 + g.rng.NormFloat64()*0.8 + span*0.2
	score := int(math.Round(math.Max(float64(g.config.MinScore), math.Min(float64(g.config.MaxScore), raw))))

	satisfaction := 1.5 + float64(score-g.config.MinScore)*0.6 + g.rng.NormFloat64()*0.5
	satisfaction = math.Round(math.Max(1, math.Min(5, satisfaction))*10) / 10

	salary := g.config.BaseSalary + float64(age)*850 + float64(score)*2500 + g.rng.NormFloat64()*4000
	salary = math.Round(math.Max(g.config.BaseSalary/2, salary))

	return employee.Record{
		Age:               age,
		Gender:            g.randomGender(),
		MaritalStatus:     g.randomMaritalStatus(),
		PerformanceScore:  score,
		SatisfactionLevel: satisfaction,
		AverageWorkHours:  hours,
		Salary:            salary,
	}
}

// Helper methods for random value generation

func (g *EmployeeGenerator) randomGender() employee.Gender {
	if g.rng.Float64() < 0.5 {
		return employee.Male
	}
	return employee.Female
}

func (g *EmployeeGenerator) randomMaritalStatus() employee.MaritalStatus {
	statuses := employee.MaritalStatuses()
	weights := []float64{0.35, 0.4, 0.12, 0.08, 0.05} // Married most common

	r := g.rng.Float64()
	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if r <= cumulative {
			return statuses[i]
		}
	}
	return statuses[0]
}

// Header returns the column header row in schema order.
func Header() []string {
	cols := employee.Columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = string(c)
	}
	return header
}

// Row formats a record in schema order.
func Row(r employee.Record) []string {
	return []string{
		strconv.Itoa(r.Age),
		string(r.Gender),
		string(r.MaritalStatus),
		strconv.Itoa(r.PerformanceScore),
		strconv.FormatFloat(r.SatisfactionLevel, 'f', -1, 64),
		strconv.FormatFloat(r.AverageWorkHours, 'f', -1, 64),
		strconv.FormatFloat(r.Salary, 'f', -1, 64),
	}
}

// WriteCSV writes records as CSV with a header row. withBOM prefixes the
// output with a UTF-8 byte order mark, as spreadsheet exports often do.
func WriteCSV(w io.Writer, records []employee.Record, withBOM bool) error {
	if withBOM {
		if _, err := io.WriteString(w, "\ufeff"); err != nil {
			return err
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX saves records into a workbook at path, on the named sheet.
func WriteXLSX(path, sheet string, records []employee.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	}

	write := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheet, cell, &row)
	}

	if err := write(1, Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range records {
		if err := write(i+2, Row(r)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return f.SaveAs(path)
}
