package hash

import "github.com/gostonefire/symboltable/hashfunc"

// twoProbeMultiplier - Multiplier spreading the primary bucket into the secondary one
const twoProbeMultiplier int64 = 31

// TwoProbeHashAlgorithm - Gives every key two candidate buckets for Two Probe Chaining:
// h1 = hash % tableSize and h2 = (h1 * 31) % tableSize.
// The two coincide when tableSize divides h1 * 30, for instance always for bucket 0.
type TwoProbeHashAlgorithm struct {
	tableSize int64
}

// NewTwoProbeHashAlgorithm - Returns a pointer to a new TwoProbeHashAlgorithm instance
func NewTwoProbeHashAlgorithm(tableSize int64) *TwoProbeHashAlgorithm {
	ha := &TwoProbeHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (T *TwoProbeHashAlgorithm) SetTableSize(tableSize int64) {
	T.tableSize = tableSize
}

// HashFunc1 - Given a hash code it generates the primary bucket between 0 and table size - 1
func (T *TwoProbeHashAlgorithm) HashFunc1(hashCode int64) int64 {
	return hashfunc.NonNegative(hashCode) % T.tableSize
}

// HashFunc2 - Given a hash code it generates the secondary bucket between 0 and table size - 1
func (T *TwoProbeHashAlgorithm) HashFunc2(hashCode int64) int64 {
	return (T.HashFunc1(hashCode) * twoProbeMultiplier) % T.tableSize
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (T *TwoProbeHashAlgorithm) GetTableSize() int64 {
	return T.tableSize
}

// ProbeIteration - Returns the primary bucket for iteration 0 and the secondary bucket for any later iteration
func (T *TwoProbeHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	if iteration == 0 {
		return hf1Value
	}

	return hf2Value
}
