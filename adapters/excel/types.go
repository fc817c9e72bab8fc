package excel

// ExcelData is the raw table read from a CSV or XLSX file
type ExcelData struct {
	Headers []string   // Column headers
	Rows    [][]string // Data rows, one observation each
}
