package hashfunc

import "math"

// Key - The capability every hash map key must provide: a deterministic hash code and an equality test.
// The hash code may be negative, hash algorithms map it through NonNegative before use.
type Key[K any] interface {
	// HashCode - Returns the same value for keys that are Equals
	HashCode() int64
	// Equals - Returns true if other denotes the same key
	Equals(other K) bool
}

// NonNegative - Clears the sign bit of a hash code. The full 63-bit code is kept, so home buckets of negative
// keys differ from those a 31-bit mask over a 32-bit hash would give.
func NonNegative(hashCode int64) int64 {
	return hashCode & math.MaxInt64
}

// HashAlgorithm - Interface that permits an implementation using the HashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash map. Hence, if a custom hash algorithm is supplied that implements
	// this interface and the instance is already having a table size, it will be overwritten by the number of
	// buckets that was supplied when creating the hash map.
	//   - tableSize is the number of buckets the hash map will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given the hash code of a key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(hashCode int64) int64

	// HashFunc2 - Given the hash code of a key it generates a second value. In Double Hashing it is the probing
	// offset used together with the value from HashFunc1, in Two Probe Chaining it is the alternative bucket.
	HashFunc2(hashCode int64) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
	// from the HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those values rather than
	// using the actual key as input. Iteration 0 must return hf1Value.
	// For some probing algorithms it may be that they return a probing value outside the hash table bucket range, that is
	// alright, the internal loop will then just increment the iteration by one and call this function again.
	// Two Probe Chaining only asks for iterations 0 and 1, its two candidate buckets.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
