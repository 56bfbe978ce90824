package hash

import "github.com/gostonefire/symboltable/hashfunc"

// QuadraticProbingHashAlgorithm - Uses the same bucket selection as LinearProbingHashAlgorithm but probes
// at offsets 0, 1, 4, 9, ... (iteration squared) from the home bucket.
type QuadraticProbingHashAlgorithm struct {
	tableSize int64
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
func NewQuadraticProbingHashAlgorithm(tableSize int64) *QuadraticProbingHashAlgorithm {
	ha := &QuadraticProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (Q *QuadraticProbingHashAlgorithm) SetTableSize(tableSize int64) {
	Q.tableSize = tableSize
}

// HashFunc1 - Given a hash code it generates an index (bucket) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HashFunc1(hashCode int64) int64 {
	return hashfunc.NonNegative(hashCode) % Q.tableSize
}

// HashFunc2 - Not used in quadratic probing collision resolution techniques, returns a dummy value
func (Q *QuadraticProbingHashAlgorithm) HashFunc2(hashCode int64) int64 {
	return 0
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing.
// (iteration mod tableSize) squared is congruent to iteration squared, which keeps the product from overflowing.
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	i := iteration % Q.tableSize

	return (hf1Value + (i*i)%Q.tableSize) % Q.tableSize
}
