package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gocorr/domain/core"
	"gocorr/domain/series"

	"github.com/xuri/excelize/v2"
)

// DataReader reads series matrices from Excel and CSV files. Every column is a
// series except the weight column; every data row is one observation.
type DataReader struct {
	config ReaderConfig
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(config ReaderConfig) *DataReader {
	if config.Sheet == "" {
		config.Sheet = "Sheet1"
	}
	if config.WeightColumn == "" {
		config.WeightColumn = "weight"
	}
	return &DataReader{config: config}
}

// ReadMatrix reads path and converts it into a labelled matrix
func (r *DataReader) ReadMatrix(ctx context.Context, path string) (*series.Input, error) {
	data, err := r.ReadData(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	input, err := ToInput(data, r.config.WeightColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	input.Source = path
	return input, nil
}

// ReadData reads the raw table from path, choosing the format by extension
func (r *DataReader) ReadData(path string) (*ExcelData, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("data file not found: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer file.Close()
		return ReadCSV(file)
	case ".xlsx", ".xlsm":
		return r.readExcelData(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func (r *DataReader) readExcelData(path string) (*ExcelData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.config.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.config.Sheet, err)
	}
	log.Printf("[DataReader] %s read in %.2fms (%d rows)", r.config.Sheet,
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	return processRows(rows)
}

// ReadCSV reads a CSV table from r
func ReadCSV(r io.Reader) (*ExcelData, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[DataReader] CSV read (%d rows)", len(rows))

	return processRows(rows)
}

func processRows(rows [][]string) (*ExcelData, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	return &ExcelData{Headers: headers, Rows: rows[1:]}, nil
}

// ToInput transposes the table: each non-weight column becomes one series.
// Missing or non-numeric cells are shape errors naming row and column.
func ToInput(data *ExcelData, weightColumn string) (*series.Input, error) {
	weightIdx := -1
	for i, h := range data.Headers {
		if strings.EqualFold(h, weightColumn) {
			weightIdx = i
			break
		}
	}
	if weightIdx < 0 {
		return nil, fmt.Errorf("%w: weight column %q not found", core.ErrShapeMismatch, weightColumn)
	}

	input := &series.Input{
		Weights: make(series.Weights, 0, len(data.Rows)),
	}
	columns := make([]int, 0, len(data.Headers)-1)
	for i, h := range data.Headers {
		if i == weightIdx {
			continue
		}
		key, err := core.ParseSeriesKey(h)
		if err != nil {
			key = core.DefaultSeriesKey(len(columns))
		}
		columns = append(columns, i)
		input.Keys = append(input.Keys, key)
		input.Data = append(input.Data, make([]float64, 0, len(data.Rows)))
	}

	for r, row := range data.Rows {
		w, err := parseCell(row, weightIdx, r, data.Headers)
		if err != nil {
			return nil, err
		}
		input.Weights = append(input.Weights, w)

		for s, c := range columns {
			v, err := parseCell(row, c, r, data.Headers)
			if err != nil {
				return nil, err
			}
			input.Data[s] = append(input.Data[s], v)
		}
	}

	return input, nil
}

func parseCell(row []string, col, rowIdx int, headers []string) (float64, error) {
	// rowIdx+2 is the 1-based spreadsheet row, counting the header
	if col >= len(row) || strings.TrimSpace(row[col]) == "" {
		return 0, fmt.Errorf("%w: row %d column %q is empty", core.ErrShapeMismatch, rowIdx+2, headers[col])
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %q: %v", core.ErrShapeMismatch, rowIdx+2, headers[col], err)
	}
	return v, nil
}
