package twoprobe

import (
	"fmt"
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/hashfunc"
	"github.com/gostonefire/symboltable/internal/hash"
	"github.com/gostonefire/symboltable/internal/model"
	"go.uber.org/zap"
	"slices"
)

// TPTable - Represents an implementation of the Two Probe Chaining Collision Resolution Technique.
// Every bucket holds a chain of entries and every key has two candidate buckets. A new key is appended to
// whichever candidate chain is shorter at the time, the primary one on a tie.
type TPTable[K hashfunc.Key[K], V any] struct {
	buckets           [][]model.Entry[K, V]
	numberOfBuckets   int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nRecords          int64
}

// NewTPTable - Returns a pointer to a new instance of a Two Probe Chaining table.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - tpTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTPTable[K hashfunc.Key[K], V any](crtConf model.CRTConf) (tpTable *TPTable[K, V], err error) {
	if crtConf.CollisionResolutionTechnique != crt.TwoProbeChaining {
		err = crt.UnknownTechnique{}
		return
	}

	if crtConf.NumberOfBuckets <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewTwoProbeHashAlgorithm(crtConf.NumberOfBuckets)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBuckets)
	}

	numberOfBuckets := crtConf.HashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d, must be higher than 0 (zero)", numberOfBuckets)
		return
	}

	tpTable = &TPTable[K, V]{
		buckets:           make([][]model.Entry[K, V], numberOfBuckets),
		numberOfBuckets:   numberOfBuckets,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	if crtConf.Logger != nil {
		crtConf.Logger.Debug("two probe chaining table created",
			zap.Int64("buckets", numberOfBuckets),
			zap.Bool("internalAlgorithm", internalAlg),
		)
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from TPTable
func (T *TPTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.TwoProbeChaining,
		NumberOfBuckets:              T.numberOfBuckets,
		InternalAlgorithm:            T.internalAlgorithm,
	}

	return
}

// GetBucket - Returns a bucket with its records given the bucket number
//   - bucketNo is the identifier of a bucket, between 0 and number of buckets - 1
//
// It returns:
//   - bucket is a model.Bucket struct containing all records of the chain, in chain order
//   - err is standard error
func (T *TPTable[K, V]) GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= T.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	chain := T.buckets[bucketNo]
	bucket = model.Bucket[K, V]{
		Records:  make([]model.Record[K, V], len(chain)),
		BucketNo: bucketNo,
	}
	for i, entry := range chain {
		bucket.Records[i] = model.Record[K, V]{
			State:         model.RecordOccupied,
			RecordAddress: int64(i),
			Entry:         entry,
		}
	}

	return
}

// Get - Gets the value that corresponds to the given key, searching the primary bucket before the secondary.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - found is false if no record with the key exists
//   - err is a standard error if the hash algorithm gives a bucket outside the table
func (T *TPTable[K, V]) Get(key K) (value V, found bool, err error) {
	bucketNo, recordNo, found, err := T.find(key)
	if err != nil || !found {
		return
	}

	value = T.buckets[bucketNo][recordNo].Value

	return
}

// Set - Updates an existing record with new data or adds it to the shorter of the two candidate buckets.
//   - entry is the key and value to set
//
// It returns:
//   - err is a standard error if the hash algorithm gives a bucket outside the table
func (T *TPTable[K, V]) Set(entry model.Entry[K, V]) (err error) {
	bucketNo, recordNo, found, err := T.find(entry.Key)
	if err != nil {
		return
	}

	if found {
		T.buckets[bucketNo][recordNo].Value = entry.Value
		return
	}

	primary, secondary, err := T.getBucketNos(entry.Key)
	if err != nil {
		return
	}

	if len(T.buckets[primary]) > len(T.buckets[secondary]) {
		T.buckets[secondary] = append(T.buckets[secondary], entry)
	} else {
		T.buckets[primary] = append(T.buckets[primary], entry)
	}
	T.nRecords++

	return
}

// Delete - Removes the record with the given key from whichever candidate bucket holds it.
//   - key is the identifier of the record to delete
//
// It returns:
//   - deleted is false if there was no record with the key
//   - err is a standard error if the hash algorithm gives a bucket outside the table
func (T *TPTable[K, V]) Delete(key K) (deleted bool, err error) {
	primary, secondary, err := T.getBucketNos(key)
	if err != nil {
		return
	}

	deleted = T.removeFromBucket(primary, key)
	if primary != secondary && T.removeFromBucket(secondary, key) {
		deleted = true
	}

	return
}

// Keys - Returns a snapshot of all keys, in bucket order and then chain order
func (T *TPTable[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, T.nRecords)
	for _, chain := range T.buckets {
		for _, entry := range chain {
			keys = append(keys, entry.Key)
		}
	}

	return
}

// Len - Returns the number of records in use
func (T *TPTable[K, V]) Len() int64 {
	return T.nRecords
}

// getBucketNos - Returns the primary and secondary bucket of a key
func (T *TPTable[K, V]) getBucketNos(key K) (primary, secondary int64, err error) {
	hashCode := key.HashCode()
	hf1Value := T.hashAlgorithm.HashFunc1(hashCode)
	hf2Value := T.hashAlgorithm.HashFunc2(hashCode)

	primary = T.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, 0)
	secondary = T.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, 1)
	if primary < 0 || primary >= T.numberOfBuckets || secondary < 0 || secondary >= T.numberOfBuckets {
		err = fmt.Errorf("received bucket number from bucket algorithm is outside permitted range")
	}

	return
}

// find - Locates the record with the given key, primary bucket first
func (T *TPTable[K, V]) find(key K) (bucketNo, recordNo int64, found bool, err error) {
	primary, secondary, err := T.getBucketNos(key)
	if err != nil {
		return
	}

	for _, bucketNo = range []int64{primary, secondary} {
		for i, entry := range T.buckets[bucketNo] {
			if entry.Key.Equals(key) {
				recordNo = int64(i)
				found = true
				return
			}
		}
	}

	return
}

// removeFromBucket - Removes every record matching key from one chain, returns true if any was removed
func (T *TPTable[K, V]) removeFromBucket(bucketNo int64, key K) (removed bool) {
	chain := T.buckets[bucketNo]
	for i := 0; i < len(chain); {
		if chain[i].Key.Equals(key) {
			chain = slices.Delete(chain, i, i+1)
			T.nRecords--
			removed = true
		} else {
			i++
		}
	}
	T.buckets[bucketNo] = chain

	return
}
