package hash

import "github.com/gostonefire/symboltable/hashfunc"

// DoubleHashAlgorithm - The internally used bucket selection algorithm clears the sign bit of the key hash code
// and applies HashFunc1 and HashFunc2 as primary respective probing functions.
// The probe sequence covers every bucket once per cycle only when the table size is a prime.
type DoubleHashAlgorithm struct {
	tableSize int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = tableSize
}

// HashFunc1 - Given a hash code it generates an index (bucket) between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(hashCode int64) int64 {
	return hashfunc.NonNegative(hashCode) % D.tableSize
}

// HashFunc2 - Given a hash code it generates an offset probing value, never zero, that will be used together
// with the value from HashFunc1 in a call to ProbeIteration.
func (D *DoubleHashAlgorithm) HashFunc2(hashCode int64) int64 {
	if D.tableSize < 2 {
		return 1
	}
	k := hashfunc.NonNegative(hashCode)

	return 1 + ((k / D.tableSize) % (D.tableSize - 1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + (iteration%D.tableSize)*hf2Value) % D.tableSize
}
