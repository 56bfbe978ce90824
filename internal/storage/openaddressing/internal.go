package openaddressing

import (
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/internal/model"
)

// probingForGet - Is the Probing Collision Resolution Technique algorithm for getting a record.
// Deleted records are probed past, an empty record ends the search.
func (Q *OATable[K, V]) probingForGet(key K) (recordNo int64, found bool, err error) {
	var probe, n int64

	hashCode := key.HashCode()
	hf1Value := Q.hashAlgorithm.HashFunc1(hashCode)
	hf2Value := Q.hashAlgorithm.HashFunc2(hashCode)

	iMax := Q.numberOfBuckets * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < Q.numberOfBuckets && probe >= 0 {
			record := &Q.records[probe]

			switch record.State {
			case model.RecordEmpty:
				return

			case model.RecordOccupied:
				if record.Key.Equals(key) {
					recordNo = probe
					found = true
					return
				}
			}

			// One probe cycle is as many probes as there are buckets
			n++
			if n >= Q.numberOfBuckets {
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for getting a record for set.
// It returns the matching record if the key exists, otherwise the first deleted record on the probe sequence,
// otherwise the first empty record.
func (Q *OATable[K, V]) probingForSet(key K) (recordNo int64, err error) {
	var deletedRecordNo int64
	var hasCached bool
	var probe, n int64

	hashCode := key.HashCode()
	hf1Value := Q.hashAlgorithm.HashFunc1(hashCode)
	hf2Value := Q.hashAlgorithm.HashFunc2(hashCode)

	iMax := Q.numberOfBuckets * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < Q.numberOfBuckets && probe >= 0 {
			record := &Q.records[probe]

			switch record.State {
			case model.RecordEmpty:
				if hasCached {
					recordNo = deletedRecordNo
				} else {
					recordNo = probe
				}
				return

			case model.RecordOccupied:
				if record.Key.Equals(key) {
					recordNo = probe
					return
				}

			case model.RecordDeleted:
				if !hasCached {
					deletedRecordNo = probe
					hasCached = true
				}
			}

			// One probe cycle is as many probes as there are buckets
			n++
			if n >= Q.numberOfBuckets {
				if hasCached {
					recordNo = deletedRecordNo
					return
				}
				err = crt.TableFull{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// updateUtilizationInfo - Moves one record between the empty, occupied and deleted counters
func (Q *OATable[K, V]) updateUtilizationInfo(fromState, toState uint8) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.RecordEmpty:
		Q.nEmpty--
	case model.RecordOccupied:
		Q.nOccupied--
	case model.RecordDeleted:
		Q.nDeleted--
	}

	switch toState {
	case model.RecordEmpty:
		Q.nEmpty++
	case model.RecordOccupied:
		Q.nOccupied++
	case model.RecordDeleted:
		Q.nDeleted++
	}
}
