package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// ComputeInputHash fingerprints a matrix and its weights. Each row is length-prefixed
// so that reshaping the same values yields a different hash.
func ComputeInputHash(data [][]float64, weights []float64) Hash {
	buf := make([]byte, 0, 8*(len(weights)+1)*(len(data)+1))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(weights)))
	for _, w := range weights {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(w))
	}
	for _, row := range data {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(row)))
		for _, v := range row {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}
	return NewHash(buf)
}
