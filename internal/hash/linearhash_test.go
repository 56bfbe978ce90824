//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLinearProbingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns the table size unchanged", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute
		bucketNo := h.HashFunc1(23)

		// Check
		assert.Equal(t, int64(3), bucketNo, "create a valid bucket number")
	})

	t.Run("maps negative hash codes into the table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute
		bucketNo := h.HashFunc1(-1)

		// Check
		assert.Equal(t, int64(7), bucketNo, "sign bit cleared before modulo")
	})
}

func TestLinearProbingHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute
		h.SetTableSize(997)

		// Check
		assert.Equal(t, int64(997), h.GetTableSize(), "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)
		tableSize := h.GetTableSize()

		bucketNo := h.HashFunc1(38334343)

		visit := make([]int, tableSize)

		// Execute
		for i := int64(0); i < tableSize; i++ {
			probe := h.ProbeIteration(bucketNo, 0, i)
			assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		assert.Equal(t, bucketNo, h.ProbeIteration(bucketNo, 0, 0), "first probe is the home bucket")
		for i := int64(0); i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in bucket #%d", i)
		}
	})

	t.Run("steps one bucket at a time and wraps", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute
		probes := []int64{h.ProbeIteration(8, 0, 0), h.ProbeIteration(8, 0, 1), h.ProbeIteration(8, 0, 2), h.ProbeIteration(8, 0, 12)}

		// Check
		assert.Equal(t, []int64{8, 9, 0, 0}, probes, "stride of one modulo table size")
	})
}
