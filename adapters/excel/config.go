package excel

// ReaderConfig controls how a spreadsheet is turned into a series matrix
type ReaderConfig struct {
	Sheet        string `json:"sheet"`
	WeightColumn string `json:"weight_column"`
}

// DefaultReaderConfig reads Sheet1 and takes weights from the "weight" column
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		Sheet:        "Sheet1",
		WeightColumn: "weight",
	}
}
