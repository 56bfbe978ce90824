//go:build unit

package hashfunc

import (
	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestNonNegative(t *testing.T) {
	t.Run("keeps positive values", func(t *testing.T) {
		assert.Equal(t, int64(0), NonNegative(0))
		assert.Equal(t, int64(38334343), NonNegative(38334343))
		assert.Equal(t, int64(math.MaxInt64), NonNegative(math.MaxInt64))
	})

	t.Run("clears the sign bit of negative values", func(t *testing.T) {
		assert.Equal(t, int64(math.MaxInt64), NonNegative(-1))
		assert.Equal(t, int64(0), NonNegative(math.MinInt64))
		assert.GreaterOrEqual(t, NonNegative(-42341145), int64(0))
	})

	t.Run("keeps all 63 low bits", func(t *testing.T) {
		assert.Equal(t, int64(math.MaxInt64-4), NonNegative(-5))
		assert.Equal(t, int64(3), NonNegative(-5)%7, "home bucket of -5 in 7 buckets")
		assert.Equal(t, int64(4), int64(-5&math.MaxInt32)%7, "a 31-bit mask lands elsewhere")
	})
}

func TestIntKey(t *testing.T) {
	t.Run("hash code is the value", func(t *testing.T) {
		assert.Equal(t, int64(-72), IntKey(-72).HashCode())
		assert.Equal(t, int64(71), IntKey(71).HashCode())
	})

	t.Run("equality", func(t *testing.T) {
		assert.True(t, IntKey(48).Equals(48))
		assert.False(t, IntKey(48).Equals(-48))
	})
}

func TestStringKey(t *testing.T) {
	t.Run("hash code is the xxhash digest", func(t *testing.T) {
		// Prepare
		k := StringKey("Ottawa")

		// Execute
		hashCode := k.HashCode()

		// Check
		assert.Equal(t, int64(xxhash.Sum64String("Ottawa")), hashCode, "xxhash digest")
		assert.Equal(t, hashCode, StringKey("Ottawa").HashCode(), "deterministic")
	})

	t.Run("equality", func(t *testing.T) {
		assert.True(t, StringKey("a").Equals("a"))
		assert.False(t, StringKey("a").Equals("b"))
	})
}
