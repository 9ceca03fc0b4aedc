package dataprocessing

import (
	"math"
	"sort"

	apperrors "paycli/internal/errors"
	"paycli/pkg/contracts/domain"
)

// Summarize computes the aggregate salary statistics over the merged rows.
//
// The average counts every row, duplicated gross values included, and is
// rounded to one decimal place half away from zero. The second highest is
// taken over the set of distinct gross values, so it needs at least two of
// them; zero rows or a single distinct value abort the run.
func Summarize(rows []domain.EmployeeRow) (domain.SalarySummary, error) {
	if len(rows) == 0 {
		return domain.SalarySummary{}, apperrors.NewEmptyInputError()
	}

	sum := 0
	distinct := make(map[int]struct{}, len(rows))
	for _, row := range rows {
		sum += row.GrossSalary
		distinct[row.GrossSalary] = struct{}{}
	}

	if len(distinct) < 2 {
		return domain.SalarySummary{}, apperrors.NewInsufficientDataError(len(distinct))
	}

	values := make([]int, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Ints(values)

	return domain.SalarySummary{
		SecondHighest: values[len(values)-2],
		Average:       roundToOneDecimal(float64(sum) / float64(len(rows))),
	}, nil
}

// roundToOneDecimal rounds half away from zero, so 0.25 becomes 0.3.
func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
