package openaddressing

import (
	"fmt"
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/hashfunc"
	"github.com/gostonefire/symboltable/internal/hash"
	"github.com/gostonefire/symboltable/internal/model"
	"go.uber.org/zap"
)

// OATable - Represents an implementation of the Open Addressing Collision Resolution Techniques.
// It uses one fixed size array of buckets where each bucket holds one record. In case of a collision, it probes through
// the table using a collision resolution algorithm, looking for an empty slot, and assigns the free slot to the entry.
// Deleted records stay in the probe sequence as tombstones until a later Set reuses them.
// Once all slots on a probe sequence are occupied the table will accept no more records for that key.
type OATable[K hashfunc.Key[K], V any] struct {
	records                      []model.Record[K, V]
	numberOfBuckets              int64
	hashAlgorithm                hashfunc.HashAlgorithm
	internalAlgorithm            bool
	CollisionResolutionTechnique int
	nEmpty                       int64
	nOccupied                    int64
	nDeleted                     int64
}

// NewOATable - Returns a pointer to a new instance of an Open Addressing table.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable[K hashfunc.Key[K], V any](crtConf model.CRTConf) (oaTable *OATable[K, V], err error) {
	if !crt.IsOpenAddressing(crtConf.CollisionResolutionTechnique) {
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
		switch crtConf.CollisionResolutionTechnique {
		case crt.LinearProbing:
			crtConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(crtConf.NumberOfBuckets)
		case crt.QuadraticProbing:
			crtConf.HashAlgorithm = hash.NewQuadraticProbingHashAlgorithm(crtConf.NumberOfBuckets)
		case crt.DoubleHashing:
			crtConf.HashAlgorithm = hash.NewDoubleHashAlgorithm(crtConf.NumberOfBuckets)
		}
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBuckets)
	}

	numberOfBuckets := crtConf.HashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d, must be higher than 0 (zero)", numberOfBuckets)
		return
	}

	records := make([]model.Record[K, V], numberOfBuckets)
	for i := range records {
		records[i].RecordAddress = int64(i)
	}

	oaTable = &OATable[K, V]{
		records:                      records,
		numberOfBuckets:              numberOfBuckets,
		hashAlgorithm:                crtConf.HashAlgorithm,
		internalAlgorithm:            internalAlg,
		CollisionResolutionTechnique: crtConf.CollisionResolutionTechnique,
		nEmpty:                       numberOfBuckets,
		nOccupied:                    0,
		nDeleted:                     0,
	}

	if crtConf.Logger != nil {
		crtConf.Logger.Debug("open addressing table created",
			zap.String("technique", crt.TechniqueName(crtConf.CollisionResolutionTechnique)),
			zap.Int64("buckets", numberOfBuckets),
			zap.Bool("internalAlgorithm", internalAlg),
		)
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (Q *OATable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: Q.CollisionResolutionTechnique,
		NumberOfBuckets:              Q.numberOfBuckets,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// GetBucket - Returns a bucket with its record given the bucket number
//   - bucketNo is the identifier of a bucket, between 0 and number of buckets - 1
//
// It returns:
//   - bucket is a model.Bucket struct containing the one record of the bucket
//   - err is standard error
func (Q *OATable[K, V]) GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error) {
	if bucketNo < 0 || bucketNo >= Q.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	bucket = model.Bucket[K, V]{
		Records:  []model.Record[K, V]{Q.records[bucketNo]},
		BucketNo: bucketNo,
	}

	return
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - found is false if no record with the key exists
//   - err is of type crt.ProbingAlgorithm if the hash algorithm never produced a probe within the table
func (Q *OATable[K, V]) Get(key K) (value V, found bool, err error) {
	recordNo, found, err := Q.probingForGet(key)
	if err != nil || !found {
		return
	}

	value = Q.records[recordNo].Value

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
//   - entry is the key and value to set
//
// It returns:
//   - err is of type crt.TableFull if there is no room left on the probe sequence of the key, crt.ProbingAlgorithm
//     if the hash algorithm never produced a probe within the table
func (Q *OATable[K, V]) Set(entry model.Entry[K, V]) (err error) {
	recordNo, err := Q.probingForSet(entry.Key)
	if err != nil {
		return
	}

	fromState := Q.records[recordNo].State
	Q.records[recordNo] = model.Record[K, V]{
		State:         model.RecordOccupied,
		RecordAddress: recordNo,
		Entry:         entry,
	}

	Q.updateUtilizationInfo(fromState, model.RecordOccupied)

	return
}

// Delete - Deletes a record by setting state to RecordDeleted and clearing its key and value.
// The record keeps its place in the probe sequence of other keys.
//   - key is the identifier of the record to delete
//
// It returns:
//   - deleted is false if there was no record with the key
//   - err is of type crt.ProbingAlgorithm if the hash algorithm never produced a probe within the table
func (Q *OATable[K, V]) Delete(key K) (deleted bool, err error) {
	recordNo, found, err := Q.probingForGet(key)
	if err != nil || !found {
		return
	}

	fromState := Q.records[recordNo].State
	Q.records[recordNo] = model.Record[K, V]{
		State:         model.RecordDeleted,
		RecordAddress: recordNo,
	}

	Q.updateUtilizationInfo(fromState, model.RecordDeleted)
	deleted = true

	return
}

// Keys - Returns a snapshot of all keys in use, in bucket order
func (Q *OATable[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, Q.nOccupied)
	for i := range Q.records {
		if Q.records[i].State == model.RecordOccupied {
			keys = append(keys, Q.records[i].Key)
		}
	}

	return
}

// Len - Returns the number of records in use
func (Q *OATable[K, V]) Len() int64 {
	return Q.nOccupied
}
