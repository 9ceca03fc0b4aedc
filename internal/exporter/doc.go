// Package exporter writes the combined payroll report.
//
// WorkbookWriter produces the spreadsheet output: header row, the merged
// employee rows with the derived gross salary column, and a footer line with
// the second-highest and average salary. RenderSummaryTable formats the same
// statistics as a console table for the end of a run.
package exporter
