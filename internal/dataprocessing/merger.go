package dataprocessing

import (
	"log/slog"
	"strconv"
	"strings"

	"paycli/internal/config"
	apperrors "paycli/internal/errors"
	"paycli/pkg/contracts/domain"
)

// Merger combines the rows of all input files, drops exact duplicates and
// appends the derived gross salary to each surviving row.
type Merger struct {
	logger *slog.Logger
	layout config.SalaryLayout
}

// NewMerger creates a merger for the given salary column layout.
func NewMerger(logger *slog.Logger, layout config.SalaryLayout) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{logger: logger, layout: layout}
}

// Merge walks the files in discovery order and the rows within each file in
// file order. A row is kept the first time its original field tuple appears;
// later identical rows are dropped regardless of file origin. Gross salary is
// basic salary plus allowances, computed exactly once per kept row. Any row
// that is too short or carries a non-integer salary field aborts the run.
func (m *Merger) Merge(datFiles []*domain.DatFile) ([]domain.EmployeeRow, error) {
	seen := make(map[string]struct{})
	var combined []domain.EmployeeRow

	minFields := m.layout.MinFields()

	for _, f := range datFiles {
		for _, row := range f.Rows {
			key := rowKey(row)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			if len(row) < minFields {
				m.logger.Error("row has too few fields for salary columns",
					slog.String("file", f.Path),
					slog.Any("row", row),
					slog.Int("need", minFields),
					slog.Int("got", len(row)))
				return nil, apperrors.NewMissingFieldError(row).WithContext("file", f.Path)
			}

			basic, err := parseSalaryField(row[m.layout.BasicSalaryIndex])
			if err != nil {
				m.logger.Error("error converting basic salary to int",
					slog.String("file", f.Path),
					slog.Any("row", row),
					slog.String("error", err.Error()))
				return nil, apperrors.NewValueConversionError(row, err).WithContext("file", f.Path)
			}
			allowances, err := parseSalaryField(row[m.layout.AllowancesIndex])
			if err != nil {
				m.logger.Error("error converting allowances to int",
					slog.String("file", f.Path),
					slog.Any("row", row),
					slog.String("error", err.Error()))
				return nil, apperrors.NewValueConversionError(row, err).WithContext("file", f.Path)
			}

			combined = append(combined, domain.EmployeeRow{
				Fields:      row,
				GrossSalary: basic + allowances,
			})
		}
	}

	m.logger.Info("processed unique rows", slog.Int("count", len(combined)))
	return combined, nil
}

// rowKey builds the dedup key from the original field tuple. Fields were
// split on tabs, so joining on a tab reproduces the tuple exactly.
func rowKey(row []string) string {
	return strings.Join(row, "\t")
}

// parseSalaryField parses an integer-valued salary field, tolerating
// surrounding whitespace.
func parseSalaryField(field string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(field))
}
