package series

import (
	"gocorr/domain/core"
)

// Matrix holds S series of N observations each, one series per row
type Matrix [][]float64

// SeriesCount returns the number of series
func (m Matrix) SeriesCount() int {
	return len(m)
}

// Length returns the number of observations in the first series
func (m Matrix) Length() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy so callers can keep the original untouched
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Weights is the observation weight vector shared by every series
type Weights []float64

// Pair identifies two distinct series, I < J
type Pair struct {
	I int `json:"i"`
	J int `json:"j"`
}

// DefaultPair is returned when no pair has a correlation magnitude above zero
var DefaultPair = Pair{I: 0, J: 1}

// ScanResult is the outcome of a full pairwise scan
type ScanResult struct {
	Pair         Pair    `json:"pair"`
	Magnitude    float64 `json:"magnitude"`
	Correlation  float64 `json:"correlation"`
	PairsScanned int     `json:"pairs_scanned"`
}

// SeriesProfile summarises one series after outlier suppression
type SeriesProfile struct {
	Key              core.SeriesKey `json:"key"`
	WeightedMean     float64        `json:"weighted_mean"`
	WeightedStdDev   float64        `json:"weighted_std_dev"`
	OutliersZeroed   int            `json:"outliers_zeroed"`
	OutlierPositions []int          `json:"outlier_positions,omitempty"`
	CleanMin         float64        `json:"clean_min"`
	CleanMax         float64        `json:"clean_max"`
	CleanMedian      float64        `json:"clean_median"`
}

// Report is the externally visible result of a pair search
type Report struct {
	ID          core.ReportID     `json:"id"`
	CreatedAt   core.Timestamp    `json:"created_at"`
	InputHash   core.Hash         `json:"input_hash"`
	Pair        Pair              `json:"pair"`
	Keys        [2]core.SeriesKey `json:"keys"`
	Magnitude   float64           `json:"magnitude"`
	Correlation float64           `json:"correlation"`
	SeriesCount int               `json:"series_count"`
	Length      int               `json:"length"`
	Series      []SeriesProfile   `json:"series"`
	RuntimeMs   int64             `json:"runtime_ms"`
}

// Input is a labelled matrix with its weights, as read from a file or request
type Input struct {
	Keys    []core.SeriesKey `json:"keys,omitempty"`
	Data    Matrix           `json:"data"`
	Weights Weights          `json:"weights"`
	Source  string           `json:"source,omitempty"`
}

// KeyFor returns the label of series i, or a positional default
func (in *Input) KeyFor(i int) core.SeriesKey {
	if i >= 0 && i < len(in.Keys) && in.Keys[i] != "" {
		return in.Keys[i]
	}
	return core.DefaultSeriesKey(i)
}
