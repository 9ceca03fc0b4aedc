package config

// Application constants. The output location and file name are fixed: the
// combiner always writes result/combined_data.csv relative to the working
// directory.
const (
	AppName = "paycli"

	// Input discovery
	InputFileSuffix = ".dat"

	// Output layout
	OutputDirName  = "result"
	OutputFileName = "combined_data.csv"
	SheetName      = "Sheet1"

	// Derived column appended to the first file's header
	GrossSalaryHeader = "Gross Salary"

	// Visual width applied to every column of the output workbook
	OutputColumnWidth = 15

	// Default positional salary columns (0-based)
	DefaultBasicSalaryIndex = 5
	DefaultAllowancesIndex  = 6

	// Default log file
	DefaultLogPath = "logs/combiner.log"
)
