package symboltable

import (
	"fmt"
	"github.com/gostonefire/symboltable/bst"
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/hashfunc"
	"github.com/gostonefire/symboltable/internal/logutil"
	"github.com/gostonefire/symboltable/internal/model"
	"github.com/gostonefire/symboltable/internal/storage/openaddressing"
	"github.com/gostonefire/symboltable/internal/storage/twoprobe"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// SymbolTable - The associative map contract implemented by every backend.
// Absence is never an error, Get returns false for a missing key and Delete of a missing key is a no-op.
type SymbolTable[K any, V any] interface {
	Put(key K, value V) error
	Get(key K) (value V, found bool)
	Delete(key K) (deleted bool)
	Contains(key K) bool
	Size() int
	IsEmpty() bool
	Keys() []K
}

// OrderedSymbolTable - A SymbolTable over totally ordered keys with order statistics
type OrderedSymbolTable[K constraints.Ordered, V any] interface {
	SymbolTable[K, V]
	Min() (key K, err error)
	Max() (key K, err error)
	DeleteMin() error
	DeleteMax() error
	Floor(key K) (floor K, found bool)
	Ceiling(key K) (ceiling K, found bool)
	Rank(key K) int
	Select(k int) (key K, found bool)
	KeysBetween(lo, hi K) []K
	SizeBetween(lo, hi K) int
	Balance()
	Height() int
	LevelOrder(from K) []V
}

// Storage - Interface for any backing table implementation
type Storage[K hashfunc.Key[K], V any] interface {
	Get(key K) (value V, found bool, err error)
	Set(entry model.Entry[K, V]) (err error)
	Delete(key K) (deleted bool, err error)
	Keys() []K
	Len() int64
	GetBucket(bucketNo int64) (bucket model.Bucket[K, V], err error)
	GetStorageParameters() (params model.StorageParameters)
}

// Conf - Configuration for a new HashMap
//   - TableSize is the fixed number of buckets, zero gives crt.DefaultTableSize. A custom HashAlgorithm has the final say through GetTableSize.
//   - CollisionResolutionTechnique is one of crt.LinearProbing, crt.QuadraticProbing, crt.DoubleHashing or crt.TwoProbeChaining
//   - HashAlgorithm is an optional custom hash algorithm, nil gives the internal one for the technique
//   - Logger is an optional zap logger, nil disables logging
type Conf struct {
	TableSize                    int64
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
	Logger                       *zap.Logger
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the total number of available buckets in the hash map
//   - CollisionResolutionTechnique is the technique in use
//   - InternalAlgorithm is true if the internal hash algorithm for the technique is in use
type HashMapInfo struct {
	NumberOfBuckets              int64
	CollisionResolutionTechnique int
	InternalAlgorithm            bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - DeletedRecords is the number of tombstoned slots, always 0 (zero) for crt.TwoProbeChaining
//   - LongestBucket is the highest number of records found in a single bucket
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	DeletedRecords     int64
	LongestBucket      int64
	BucketDistribution []int64
}

// HashMap - Fixed capacity hash table implementing SymbolTable on top of a Storage chosen by technique
type HashMap[K hashfunc.Key[K], V any] struct {
	storage         Storage[K, V]
	numberOfBuckets int64
	technique       int
	logger          *zap.Logger
}

// NewHashMap - Returns a new hash map with a fixed number of buckets.
// The table never grows, putting new keys into a full open addressing table fails with crt.TableFull.
//   - conf is a Conf struct, see Conf for defaults
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap[K hashfunc.Key[K], V any](conf Conf) (hashMap *HashMap[K, V], hashMapInfo HashMapInfo, err error) {
	tableSize := conf.TableSize
	if tableSize == 0 {
		tableSize = crt.DefaultTableSize
	}

	// Check if table size is valid
	if tableSize < 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}

	logger := logutil.OrNop(conf.Logger)

	crtConf := model.CRTConf{
		NumberOfBuckets:              tableSize,
		CollisionResolutionTechnique: conf.CollisionResolutionTechnique,
		HashAlgorithm:                conf.HashAlgorithm,
		Logger:                       logger,
	}

	var storage Storage[K, V]
	switch {
	case crt.IsOpenAddressing(conf.CollisionResolutionTechnique):
		storage, err = openaddressing.NewOATable[K, V](crtConf)
	case conf.CollisionResolutionTechnique == crt.TwoProbeChaining:
		storage, err = twoprobe.NewTPTable[K, V](crtConf)
	default:
		err = crt.UnknownTechnique{}
	}
	if err != nil {
		return
	}

	sp := storage.GetStorageParameters()

	// Prepare return data
	hashMap = &HashMap[K, V]{
		storage:         storage,
		numberOfBuckets: sp.NumberOfBuckets,
		technique:       sp.CollisionResolutionTechnique,
		logger:          logger,
	}

	hashMapInfo = HashMapInfo{
		NumberOfBuckets:              sp.NumberOfBuckets,
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	return
}

// NewOrderedMap - Returns a new, empty, ordered symbol table backed by an unbalanced binary search tree
func NewOrderedMap[K constraints.Ordered, V any](opts ...bst.Option) *bst.Tree[K, V] {
	return bst.New[K, V](opts...)
}

var (
	_ SymbolTable[hashfunc.IntKey, int] = (*HashMap[hashfunc.IntKey, int])(nil)
	_ OrderedSymbolTable[int, string]   = (*bst.Tree[int, string])(nil)
)
