//go:build stress

package symboltable

import (
	"errors"
	"fmt"
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/hashfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

const (
	stressTableSize     int64 = 10007
	stressKeySpace            = 9000
	stressIterations          = 50000
	benchmarkItemCount        = 4096
	benchmarkTableSize  int64 = 8191
)

type TestCaseStress struct {
	crtName string
	buckets int64
	crt     int
}

var stressTechniques = []TestCaseStress{
	{crtName: "LinearProbing", buckets: stressTableSize, crt: crt.LinearProbing},
	{crtName: "QuadraticProbing", buckets: stressTableSize, crt: crt.QuadraticProbing},
	{crtName: "DoubleHashing", buckets: stressTableSize, crt: crt.DoubleHashing},
	{crtName: "TwoProbeChaining", buckets: 1009, crt: crt.TwoProbeChaining},
}

func TestHashMap_Stress(t *testing.T) {
	for _, test := range stressTechniques {
		t.Run(fmt.Sprintf("random operations agree with haxmap for %s", test.crtName), func(t *testing.T) {
			// Prepare
			rnd := rand.New(rand.NewSource(1))
			hashMap, _, err := NewHashMap[hashfunc.IntKey, int64](Conf{
				TableSize:                    test.buckets,
				CollisionResolutionTechnique: test.crt,
			})
			require.NoError(t, err, "create new hash map")
			oracle := haxmap.New[int64, int64]()

			for i := 0; i < stressIterations; i++ {
				key := rnd.Int63n(stressKeySpace) - stressKeySpace/2

				// Execute
				switch rnd.Intn(3) {
				case 0, 1:
					err = hashMap.Put(hashfunc.IntKey(key), int64(i))
					if errors.Is(err, crt.TableFull{}) {
						continue
					}
					require.NoError(t, err, "put key")
					oracle.Set(key, int64(i))
				default:
					_, present := oracle.Get(key)
					oracle.Del(key)
					assert.Equal(t, present, hashMap.Delete(hashfunc.IntKey(key)), "delete agrees")
				}

				// Check
				require.Equal(t, int(oracle.Len()), hashMap.Size(), "size agrees")
			}

			oracle.ForEach(func(key int64, value int64) bool {
				got, found := hashMap.Get(hashfunc.IntKey(key))
				assert.Truef(t, found, "found key %d", key)
				assert.Equalf(t, value, got, "value of key %d", key)
				return true
			})

			stat, err := hashMap.Stat(false)
			assert.NoError(t, err, "get stat")
			assert.Equal(t, int64(hashMap.Size()), stat.Records, "stat agrees with size")
			assert.Len(t, hashMap.Keys(), hashMap.Size(), "keys agree with size")
		})
	}
}

func setupSymbolTable(b *testing.B, technique int) *HashMap[hashfunc.IntKey, int64] {
	b.Helper()

	m, _, err := NewHashMap[hashfunc.IntKey, int64](Conf{
		TableSize:                    benchmarkTableSize,
		CollisionResolutionTechnique: technique,
	})
	if err != nil {
		b.Fatal(err)
	}
	for i := int64(0); i < benchmarkItemCount; i++ {
		if err = m.Put(hashfunc.IntKey(i), i); err != nil {
			b.Fatal(err)
		}
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[int64, int64] {
	b.Helper()

	m := haxmap.New[int64, int64]()
	for i := int64(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int64, int64] {
	b.Helper()

	m := hashmap.New[int64, int64]()
	for i := int64(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func BenchmarkReadSymbolTable(b *testing.B) {
	for _, technique := range []int{crt.LinearProbing, crt.QuadraticProbing, crt.DoubleHashing, crt.TwoProbeChaining} {
		b.Run(crt.TechniqueName(technique), func(b *testing.B) {
			m := setupSymbolTable(b, technique)
			b.ResetTimer()

			for n := 0; n < b.N; n++ {
				for i := int64(0); i < benchmarkItemCount; i++ {
					j, _ := m.Get(hashfunc.IntKey(i))
					if j != i {
						b.Fail()
					}
				}
			}
		})
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := int64(0); i < benchmarkItemCount; i++ {
			j, _ := m.Get(i)
			if j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := int64(0); i < benchmarkItemCount; i++ {
			j, _ := m.Get(i)
			if j != i {
				b.Fail()
			}
		}
	}
}
