//go:build unit

package model

import (
	"errors"
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/hashfunc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewEntry(t *testing.T) {
	t.Run("creates an entry", func(t *testing.T) {
		// Execute
		entry, err := NewEntry(hashfunc.IntKey(34), "three")

		// Check
		assert.NoError(t, err, "creates entry")
		assert.Equal(t, hashfunc.IntKey(34), entry.Key, "key preserved")
		assert.Equal(t, "three", entry.Value, "value preserved")
	})

	t.Run("zero values are valid", func(t *testing.T) {
		// Execute
		_, err := NewEntry(hashfunc.IntKey(0), 0)

		// Check
		assert.NoError(t, err, "zero key and value accepted")
	})

	t.Run("fails on nil value", func(t *testing.T) {
		// Prepare
		var value *int

		// Execute
		_, err := NewEntry(hashfunc.IntKey(1), value)

		// Check
		assert.True(t, errors.Is(err, crt.InvalidEntry{}), "error of type InvalidEntry")
	})

	t.Run("fails on nil key", func(t *testing.T) {
		// Prepare
		var key []byte

		// Execute
		_, err := NewEntry(key, 1)

		// Check
		assert.True(t, errors.Is(err, crt.InvalidEntry{}), "error of type InvalidEntry")
	})
}

func TestRecord(t *testing.T) {
	t.Run("zero record is empty", func(t *testing.T) {
		// Prepare
		var r Record[hashfunc.IntKey, int]

		// Check
		assert.Equal(t, RecordEmpty, r.State, "zero value state is empty")
	})

	t.Run("embeds the entry", func(t *testing.T) {
		// Prepare
		r := Record[hashfunc.IntKey, int]{State: RecordOccupied, Entry: Entry[hashfunc.IntKey, int]{Key: 2, Value: 96}}

		// Check
		assert.Equal(t, hashfunc.IntKey(2), r.Key, "promoted key")
		assert.Equal(t, 96, r.Value, "promoted value")
	})
}
