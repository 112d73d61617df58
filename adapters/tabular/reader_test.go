package tabular

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"empinsight/domain/core"
	"empinsight/domain/employee"
	"empinsight/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "age,gender,marital_status,performance_score,satisfaction_level,average_work_hours,salary\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSVTrimsCategoricalFields(t *testing.T) {
	path := writeFile(t, "employees.csv", header+
		"30, M ,Single ,3,4.1,2000,1000\n"+
		"45,F,  Married,1,2.5,1850.5,2500.75\n")

	store, err := NewReader(path).Load()
	require.NoError(t, err)

	require.Equal(t, 2, store.Len())
	assert.Equal(t, employee.Record{
		Age: 30, Gender: employee.Male, MaritalStatus: employee.Single,
		PerformanceScore: 3, SatisfactionLevel: 4.1, AverageWorkHours: 2000, Salary: 1000,
	}, store.At(0))
	assert.Equal(t, employee.Married, store.At(1).MaritalStatus)
	assert.Equal(t, employee.ScoreRange{Min: 1, Max: 3}, store.ScoreBounds())
	assert.Equal(t, path, store.Source())
}

func TestLoad_ToleratesBOMAndExtraColumns(t *testing.T) {
	path := writeFile(t, "bom.csv", "\ufeffage,employee_id,gender,marital_status,performance_score,satisfaction_level,average_work_hours,salary\n"+
		"30,E-1,M,Single,3.0,4,2000,1000\n")

	store, err := NewReader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 30, store.At(0).Age)
	assert.Equal(t, 3, store.At(0).PerformanceScore)
}

func TestLoad_RoundTripsGeneratedData(t *testing.T) {
	config := testkit.DefaultEmployeeConfig()
	config.Rows = 25
	records := testkit.NewEmployeeGenerator(config).Generate()

	var buf bytes.Buffer
	require.NoError(t, testkit.WriteCSV(&buf, records, true))

	store, err := LoadCSV("generated", &buf)
	require.NoError(t, err)
	assert.Equal(t, records, store.All().Records())
}

func TestLoad_XLSX(t *testing.T) {
	config := testkit.DefaultEmployeeConfig()
	config.Rows = 10
	records := testkit.NewEmployeeGenerator(config).Generate()

	path := filepath.Join(t.TempDir(), "employees.xlsx")
	require.NoError(t, testkit.WriteXLSX(path, "Staff", records))

	store, err := NewReader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, records, store.All().Records())

	store, err = NewReader(path, WithSheet("Staff")).Load()
	require.NoError(t, err)
	assert.Equal(t, 10, store.Len())

	_, err = NewReader(path, WithSheet("Missing")).Load()
	assert.True(t, core.IsMalformedError(err))
}

func TestLoad_NotFound(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "absent.csv")).Load()
	require.Error(t, err)
	assert.True(t, core.IsNotFoundError(err))

	var loadErr *core.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, core.LoadNotFound, loadErr.Kind)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		row     int
		column  string
	}{
		{"empty file", "", 0, ""},
		{"header only", header, 0, ""},
		{"missing column", "age,gender,marital_status,performance_score,satisfaction_level,salary\n30,M,Single,3,4,1000\n", 0, ""},
		{"non numeric salary", header + "30,M,Single,3,4,2000,1000\n31,F,Single,2,4,2000,lots\n", 2, "salary"},
		{"empty age", header + ",M,Single,3,4,2000,1000\n", 1, "age"},
		{"fractional score", header + "30,M,Single,2.5,4,2000,1000\n", 1, "performance_score"},
		{"short row", header + "30,M,Single,3\n", 1, "satisfaction_level"},
		{"overflowing age", header + "1e30,M,Single,3,4,2000,1000\n", 1, "age"},
		{"overflowing score", header + "30,M,Single,99999999999999999999,4,2000,1000\n", 1, "performance_score"},
		{"duplicate column", "age,age,gender,marital_status,performance_score,satisfaction_level,average_work_hours,salary\n", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV("inline", strings.NewReader(tt.content))
			require.Error(t, err)
			assert.True(t, core.IsMalformedError(err), "got %v", err)

			var loadErr *core.LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.row, loadErr.Row)
			assert.Equal(t, tt.column, loadErr.Column)
		})
	}
}

func TestLoad_SkipsBlankRows(t *testing.T) {
	store, err := LoadCSV("inline", strings.NewReader(header+"30,M,Single,3,4,2000,1000\n,,,,,,\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}
