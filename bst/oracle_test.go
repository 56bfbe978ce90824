//go:build unit

package bst

import (
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

func oracleKeys(oracle *btree.BTreeG[int]) []int {
	keys := make([]int, 0, oracle.Len())
	oracle.Ascend(func(item int) bool {
		keys = append(keys, item)
		return true
	})
	return keys
}

func oracleFloor(oracle *btree.BTreeG[int], key int) (floor int, found bool) {
	oracle.DescendLessOrEqual(key, func(item int) bool {
		floor, found = item, true
		return false
	})
	return
}

func oracleCeiling(oracle *btree.BTreeG[int], key int) (ceiling int, found bool) {
	oracle.AscendGreaterOrEqual(key, func(item int) bool {
		ceiling, found = item, true
		return false
	})
	return
}

func oracleRank(oracle *btree.BTreeG[int], key int) (rank int) {
	oracle.AscendLessThan(key, func(item int) bool {
		rank++
		return true
	})
	return
}

func TestTree_Oracle(t *testing.T) {
	t.Run("random operations agree with btree", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(42))
		tree := New[int, int]()
		oracle := btree.NewOrderedG[int](8)

		for i := 0; i < 5000; i++ {
			key := rnd.Intn(500)

			// Execute
			switch op := rnd.Intn(10); {
			case op < 6:
				require.NoError(t, tree.Put(key, key*2), "put key")
				oracle.ReplaceOrInsert(key)
			case op < 9:
				_, present := oracle.Delete(key)
				assert.Equal(t, present, tree.Delete(key), "delete agrees")
			default:
				tree.Balance()
			}

			// Check
			require.Equal(t, oracle.Len(), tree.Size(), "size agrees")
			probe := rnd.Intn(520) - 10
			floor, floorFound := tree.Floor(probe)
			oFloor, oFloorFound := oracleFloor(oracle, probe)
			assert.Equal(t, oFloorFound, floorFound, "floor found agrees")
			assert.Equal(t, oFloor, floor, "floor agrees")
			ceiling, ceilingFound := tree.Ceiling(probe)
			oCeiling, oCeilingFound := oracleCeiling(oracle, probe)
			assert.Equal(t, oCeilingFound, ceilingFound, "ceiling found agrees")
			assert.Equal(t, oCeiling, ceiling, "ceiling agrees")
			assert.Equal(t, oracleRank(oracle, probe), tree.Rank(probe), "rank agrees")

			if i%250 == 0 {
				require.False(t, tree.Corrupt(), "tree invariants hold")
				require.Equal(t, oracleKeys(oracle), tree.Keys(), "keys agree")
				for k := 0; k < tree.Size(); k++ {
					key, found := tree.Select(k)
					require.True(t, found, "select in range")
					require.Equal(t, k, tree.Rank(key), "rank of select")
				}
			}
		}

		assert.False(t, tree.Corrupt(), "tree invariants hold")
		assert.Equal(t, oracleKeys(oracle), tree.Keys(), "keys agree")
		for _, key := range tree.Keys() {
			value, found := tree.Get(key)
			assert.True(t, found, "key found")
			assert.Equal(t, key*2, value, "value of key")
		}
	})
}
