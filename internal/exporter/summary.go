package exporter

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"paycli/pkg/contracts/domain"
)

// RenderSummaryTable formats the run statistics as a console table printed
// after a successful run.
func RenderSummaryTable(summary domain.SalarySummary, rowCount int) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Unique Rows", rowCount},
		{"Second Highest Salary", summary.SecondHighest},
		{"Average Salary", strconv.FormatFloat(summary.Average, 'f', 1, 64)},
	})
	t.SetStyle(table.StyleDefault)
	return t.Render()
}
