package hashfunc

import "github.com/cespare/xxhash"

// IntKey - An integer key whose hash code is the integer itself
type IntKey int64

// HashCode - Returns the key value
func (I IntKey) HashCode() int64 {
	return int64(I)
}

// Equals - Returns true if other has the same value
func (I IntKey) Equals(other IntKey) bool {
	return I == other
}

// StringKey - A string key hashed with xxhash
type StringKey string

// HashCode - Returns the xxhash 64-bit digest of the string reinterpreted as a signed integer
func (S StringKey) HashCode() int64 {
	return int64(xxhash.Sum64String(string(S)))
}

// Equals - Returns true if other holds the same string
func (S StringKey) Equals(other StringKey) bool {
	return S == other
}
