package exporter

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"paycli/internal/config"
	apperrors "paycli/internal/errors"
	"paycli/pkg/contracts/domain"
)

var testHeader = []string{"ID", "Name", "Dept", "Role", "Location", "BasicSalary", "Allowances", "Gross Salary"}

func testRows() []domain.EmployeeRow {
	return []domain.EmployeeRow{
		{Fields: []string{"1", "Alice", "Engineering", "Developer", "NY", "3000", "500"}, GrossSalary: 3500},
		{Fields: []string{"2", "Bob", "Finance", "Analyst", "LA", "2500", "400"}, GrossSalary: 2900},
	}
}

func TestWorkbookWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined_data.csv")
	summary := domain.SalarySummary{SecondHighest: 2900, Average: 3200.0}

	writer := NewWorkbookWriter(slog.Default())
	require.NoError(t, writer.Write(path, testHeader, testRows(), summary))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := config.SheetName

	// Header row
	got, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", got)
	got, err = f.GetCellValue(sheet, "H1")
	require.NoError(t, err)
	assert.Equal(t, "Gross Salary", got)

	// Data rows keep the original fields and append the gross salary.
	got, err = f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got)
	got, err = f.GetCellValue(sheet, "H2")
	require.NoError(t, err)
	assert.Equal(t, "3500", got)
	got, err = f.GetCellValue(sheet, "H3")
	require.NoError(t, err)
	assert.Equal(t, "2900", got)

	// Footer sits one row below the data.
	got, err = f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Second Highest Salary=2900", got)
	got, err = f.GetCellValue(sheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "Average Salary=3200.0", got)

	// Average cell is merged across B:C.
	merged, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "B4", merged[0].GetStartAxis())
	assert.Equal(t, "C4", merged[0].GetEndAxis())

	// Fixed visual width on every column.
	width, err := f.GetColWidth(sheet, "A")
	require.NoError(t, err)
	assert.InDelta(t, float64(config.OutputColumnWidth), width, 0.01)
}

func TestWorkbookWriter_AverageKeepsOneDecimal(t *testing.T) {
	assert.Equal(t, "200.0", formatAverage(200.0))
	assert.Equal(t, "233.3", formatAverage(233.3))
}

func TestWorkbookWriter_UnwritablePath(t *testing.T) {
	// A directory that does not exist makes SaveAs fail.
	path := filepath.Join(t.TempDir(), "missing", "subdir", "combined_data.csv")
	writer := NewWorkbookWriter(slog.Default())

	err := writer.Write(path, testHeader, testRows(), domain.SalarySummary{SecondHighest: 2900, Average: 3200.0})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeWrite))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderSummaryTable(t *testing.T) {
	out := RenderSummaryTable(domain.SalarySummary{SecondHighest: 200, Average: 200.0}, 3)
	assert.Contains(t, out, "Second Highest Salary")
	assert.Contains(t, out, "200.0")
	assert.Contains(t, out, "3")
}
