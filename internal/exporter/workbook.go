package exporter

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xuri/excelize/v2"

	"paycli/internal/config"
	apperrors "paycli/internal/errors"
	"paycli/pkg/contracts/domain"
)

// WorkbookWriter writes the combined report workbook. The output keeps the
// reference tool's combined_data.csv file name even though the content is an
// xlsx workbook, so downstream consumers keep finding it at the same path.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a new workbook writer instance
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// Write produces the report workbook: one sheet, header on row 1
// (left-aligned), one right-aligned row per merged employee row with the
// gross salary as the trailing column, and a left-aligned footer line with
// the second-highest and average salary. Every column uses the same fixed
// width. Any failure is a write error and aborts the run.
func (w *WorkbookWriter) Write(path string, header []string, rows []domain.EmployeeRow, summary domain.SalarySummary) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := config.SheetName

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, config.OutputColumnWidth); err != nil {
		return apperrors.NewWriteError(path, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return apperrors.NewWriteError(path, err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return apperrors.NewWriteError(path, err)
	}
	// Footer shares the header alignment.
	footerStyle := headerStyle

	// Header row
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return apperrors.NewWriteError(path, err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return apperrors.NewWriteError(path, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return apperrors.NewWriteError(path, err)
		}
	}

	// Data rows: original fields stay strings, the gross salary is numeric.
	for rowNum, row := range rows {
		for col, field := range row.Fields {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum+2)
			if err != nil {
				return apperrors.NewWriteError(path, err)
			}
			if err := f.SetCellValue(sheet, cell, field); err != nil {
				return apperrors.NewWriteError(path, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, cellStyle); err != nil {
				return apperrors.NewWriteError(path, err)
			}
		}

		cell, err := excelize.CoordinatesToCellName(len(row.Fields)+1, rowNum+2)
		if err != nil {
			return apperrors.NewWriteError(path, err)
		}
		if err := f.SetCellValue(sheet, cell, row.GrossSalary); err != nil {
			return apperrors.NewWriteError(path, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, cellStyle); err != nil {
			return apperrors.NewWriteError(path, err)
		}
	}

	// Footer: second highest in column A, average merged across columns B:C.
	footerRow := len(rows) + 2
	secondCell, err := excelize.CoordinatesToCellName(1, footerRow)
	if err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err := f.SetCellValue(sheet, secondCell, fmt.Sprintf("Second Highest Salary=%d", summary.SecondHighest)); err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err := f.SetCellStyle(sheet, secondCell, secondCell, footerStyle); err != nil {
		return apperrors.NewWriteError(path, err)
	}

	avgStart, err := excelize.CoordinatesToCellName(2, footerRow)
	if err != nil {
		return apperrors.NewWriteError(path, err)
	}
	avgEnd, err := excelize.CoordinatesToCellName(3, footerRow)
	if err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err := f.MergeCell(sheet, avgStart, avgEnd); err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err := f.SetCellValue(sheet, avgStart, fmt.Sprintf("Average Salary=%s", formatAverage(summary.Average))); err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err := f.SetCellStyle(sheet, avgStart, avgEnd, footerStyle); err != nil {
		return apperrors.NewWriteError(path, err)
	}

	if err := f.SaveAs(path); err != nil {
		w.logger.Error("error writing to output file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return apperrors.NewWriteError(path, err)
	}

	w.logger.Info("data combined and written",
		slog.String("path", path),
		slog.Int("row_count", len(rows)))
	return nil
}

// formatAverage renders the average with one decimal always shown, so a whole
// number like 200 comes out as "200.0".
func formatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}
