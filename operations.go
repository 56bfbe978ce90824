package symboltable

import (
	"errors"
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/internal/model"
	"github.com/gostonefire/symboltable/internal/utils"
	"go.uber.org/zap"
)

// Put - Updates an existing record with new data or adds it if no record with the same key exists.
//   - key is the identifier of a record, can not be nil
//   - value is the data to store along with the key, can not be nil
//
// It returns:
//   - err is of type crt.InvalidEntry on nil key or value, crt.TableFull if an open addressing table has no room for a
//     new key, crt.ProbingAlgorithm if a custom hash algorithm never yields a bucket or a standard error otherwise
func (H *HashMap[K, V]) Put(key K, value V) (err error) {
	entry, err := model.NewEntry(key, value)
	if err != nil {
		return
	}

	err = H.storage.Set(entry)
	if errors.Is(err, crt.TableFull{}) {
		H.logger.Warn("put rejected",
			zap.String("technique", crt.TechniqueName(H.technique)),
			zap.Int64("buckets", H.numberOfBuckets),
			zap.Int64("records", H.storage.Len()),
		)
	}

	return
}

// Get - Gets the value that corresponds to the given key.
// Failures from a misbehaving custom hash algorithm are logged and reported as not found.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - found is false if no record with the key exists
func (H *HashMap[K, V]) Get(key K) (value V, found bool) {
	if utils.IsNil(key) {
		return
	}

	value, found, err := H.storage.Get(key)
	if err != nil {
		H.logger.Error("get failed", zap.Error(err))
		found = false
	}

	return
}

// Delete - Removes the record with the given key, a missing key is a no-op.
//   - key is the identifier of a record
//
// It returns:
//   - deleted is true if a record was removed
func (H *HashMap[K, V]) Delete(key K) (deleted bool) {
	if utils.IsNil(key) {
		return
	}

	deleted, err := H.storage.Delete(key)
	if err != nil {
		H.logger.Error("delete failed", zap.Error(err))
	}

	return
}

// Contains - Returns true if a record with the given key exists
func (H *HashMap[K, V]) Contains(key K) bool {
	_, found := H.Get(key)
	return found
}

// Size - Returns the number of records
func (H *HashMap[K, V]) Size() int {
	return int(H.storage.Len())
}

// IsEmpty - Returns true if there are no records
func (H *HashMap[K, V]) IsEmpty() bool {
	return H.storage.Len() == 0
}

// Keys - Returns a snapshot of all keys in storage order. Later changes to the hash map are not reflected in it.
func (H *HashMap[K, V]) Keys() []K {
	return H.storage.Keys()
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	var bucket model.Bucket[K, V]
	var hms HashMapStat

	if includeDistribution {
		hms.BucketDistribution = make([]int64, H.numberOfBuckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < H.numberOfBuckets; i++ {
		bucket, err = H.storage.GetBucket(i)
		if err != nil {
			return
		}

		var inUse int64
		for _, record := range bucket.Records {
			switch record.State {
			case model.RecordOccupied:
				inUse++
			case model.RecordDeleted:
				hms.DeletedRecords++
			}
		}

		hms.Records += inUse
		if inUse > hms.LongestBucket {
			hms.LongestBucket = inUse
		}
		if includeDistribution {
			hms.BucketDistribution[i] = inUse
		}
	}

	hashMapStat = &hms
	return
}
