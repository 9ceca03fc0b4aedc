package domain

// DatFile holds the parsed contents of one tab-delimited .dat input file.
type DatFile struct {
	Path   string     `json:"path"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// RowCount returns the number of data rows (header excluded).
func (f *DatFile) RowCount() int {
	return len(f.Rows)
}

// EmployeeRow is a deduplicated input row with the derived gross salary
// appended. Fields keeps the original string values exactly as read; the
// gross salary is computed once, at dedup time, and never recomputed.
type EmployeeRow struct {
	Fields      []string `json:"fields"`
	GrossSalary int      `json:"gross_salary"`
}

// SalarySummary holds the aggregate statistics computed over the gross
// salary column of the deduplicated row set.
type SalarySummary struct {
	// SecondHighest is the second-largest distinct gross salary value.
	SecondHighest int `json:"second_highest"`
	// Average is the mean gross salary across all rows, rounded to one
	// decimal place (half away from zero).
	Average float64 `json:"average"`
}
