package model

import (
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/hashfunc"
	"github.com/gostonefire/symboltable/internal/utils"
	"go.uber.org/zap"
)

// RecordEmpty - State indicating a record that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a record that has been in use but was deleted
const RecordDeleted uint8 = 2

// Entry - A key and value pair, the key never changes once the entry is created
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// NewEntry - Returns a new Entry given a key and a value.
// It returns an error of type crt.InvalidEntry if either key or value is nil.
func NewEntry[K any, V any](key K, value V) (entry Entry[K, V], err error) {
	if utils.IsNil(key) || utils.IsNil(value) {
		err = crt.InvalidEntry{}
		return
	}

	entry = Entry[K, V]{Key: key, Value: value}
	return
}

// Record - Represents one record in a bucket
type Record[K any, V any] struct {
	State         uint8
	RecordAddress int64
	Entry[K, V]
}

// Bucket - Represents all records in a bucket (both in use and deleted)
type Bucket[K any, V any] struct {
	Records  []Record[K, V]
	BucketNo int64
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table processing.
//   - NumberOfBuckets is the fixed number of buckets in the table
//   - CollisionResolutionTechnique is the technique to use
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal one for the technique
//   - Logger receives debug events, nil disables logging
type CRTConf struct {
	NumberOfBuckets              int64
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
	Logger                       *zap.Logger
}
