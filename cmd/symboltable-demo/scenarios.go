package main

import (
	"fmt"
	"github.com/gostonefire/symboltable"
	"github.com/gostonefire/symboltable/hashfunc"
	"go.uber.org/zap"
	"slices"
	"strings"
)

type checker struct {
	scenario string
	logger   *zap.Logger
	failed   []string
}

func newChecker(scenario string, logger *zap.Logger) *checker {
	logger.Info("running scenario", zap.String("scenario", scenario))
	return &checker{scenario: scenario, logger: logger}
}

func (c *checker) check(ok bool, msg string) {
	if !ok {
		c.failed = append(c.failed, msg)
		c.logger.Error("check failed", zap.String("scenario", c.scenario), zap.String("check", msg))
	}
}

func (c *checker) noError(err error, msg string) {
	if err != nil {
		c.check(false, fmt.Sprintf("%s: %v", msg, err))
	}
}

func (c *checker) err() error {
	if len(c.failed) == 0 {
		c.logger.Info("scenario passed", zap.String("scenario", c.scenario))
		return nil
	}
	return fmt.Errorf("scenario %s: %d checks failed: %s", c.scenario, len(c.failed), strings.Join(c.failed, "; "))
}

func sameKeys[K comparable](actual []K, expected []K) bool {
	if len(actual) != len(expected) {
		return false
	}
	for _, key := range expected {
		if !slices.Contains(actual, key) {
			return false
		}
	}
	return true
}

func testIntegers(st symboltable.SymbolTable[hashfunc.IntKey, int], logger *zap.Logger) error {
	c := newChecker("integers", logger)

	keys := []hashfunc.IntKey{-42341145, -72, -91, -45, -43, 0, 34, 2, 71, 48, 38334343}
	values := []int{58, 2, 36, 90, 51, 4, 3, 96, 19, 42, 92}
	for i, key := range keys {
		c.noError(st.Put(key, values[i]), fmt.Sprintf("put %d", key))
	}

	c.check(!st.IsEmpty(), "empty after inserting elements")
	c.check(st.Size() == 11, "does not contain correct number of elements")
	c.check(st.Contains(-42341145), "added key -42341145 does not exist")
	c.check(st.Contains(0), "added key 0 does not exist")
	c.check(st.Contains(38334343), "added key 38334343 does not exist")
	c.check(!st.Contains(-62341145), "contains unknown key -62341145")
	c.check(!st.Contains(-1), "contains unknown key -1")
	c.check(!st.Contains(58334343), "contains unknown key 58334343")
	c.check(sameKeys(st.Keys(), keys), "keys do not match expected")

	// New key
	size := st.Size()
	c.noError(st.Put(99, 42), "put 99")
	c.check(st.Size() == size+1, "size did not update")
	value, found := st.Get(99)
	c.check(found && value == 42, "does not return value of new key")

	// Existing key
	size = st.Size()
	c.noError(st.Put(-72, 2), "put -72")
	c.check(st.Size() == size, "size changed on update")
	value, found = st.Get(-72)
	c.check(found && value == 2, "does not return updated value")

	_, found = st.Get(10)
	c.check(!found, "found key that does not exist")
	value, found = st.Get(2)
	c.check(found && value == 96, "returned incorrect value for key 2")

	size = st.Size()
	c.check(!st.Delete(49), "deleted key that does not exist")
	c.check(st.Size() == size, "size changed on deleting missing key")
	c.check(st.Delete(48), "did not delete key 48")
	c.check(st.Size() == size-1, "size did not update on delete")
	c.check(!st.Contains(48), "a deleted key is still contained")

	return c.err()
}

func testStrings(st symboltable.SymbolTable[hashfunc.StringKey, int], logger *zap.Logger) error {
	c := newChecker("strings", logger)

	keys := []hashfunc.StringKey{"DFKDJSFS", "DAFDW", "XZC", "adsfas", "a", "B", "112323", "<Object>", "AAAA", "A"}
	values := []int{21, 52, 5, 8, 58, 0, 84, 743564, 7, 1}
	for i, key := range keys {
		c.noError(st.Put(key, values[i]), fmt.Sprintf("put %q", key))
	}

	c.check(!st.IsEmpty(), "empty after inserting elements")
	c.check(st.Size() == 10, "does not contain correct number of elements")
	c.check(st.Contains("112323"), "added key 112323 does not exist")
	c.check(st.Contains("a"), "added key a does not exist")
	c.check(st.Contains("DFKDJSFS"), "added key DFKDJSFS does not exist")
	c.check(!st.Contains("b"), "contains unknown key b")
	c.check(!st.Contains("AA"), "contains unknown key AA")
	c.check(sameKeys(st.Keys(), keys), "keys do not match expected")

	value, found := st.Get("<Object>")
	c.check(found && value == 743564, "returned incorrect value for key <Object>")

	size := st.Size()
	c.check(st.Delete("XZC"), "did not delete key XZC")
	c.check(st.Size() == size-1, "size did not update on delete")
	c.check(!st.Contains("XZC"), "a deleted key is still contained")

	return c.err()
}

func testOrdered(st symboltable.OrderedSymbolTable[int, string], logger *zap.Logger) error {
	c := newChecker("ordered", logger)

	names := map[int]string{10: "TEN", 3: "THREE", 1: "ONE", 5: "FIVE", 2: "TWO", 7: "SEVEN"}
	for _, key := range []int{10, 3, 1, 5, 2, 7} {
		c.noError(st.Put(key, names[key]), fmt.Sprintf("put %d", key))
	}

	c.check(slices.Equal(st.Keys(), []int{1, 2, 3, 5, 7, 10}), "in order traversal")
	logger.Info("before balance", zap.Int("height", st.Height()), zap.Strings("levels", st.LevelOrder(10)))

	st.Balance()

	c.check(len(st.LevelOrder(5)) == st.Size(), "root after balance is not 5")
	c.check(st.Height() <= 3, "height after balance exceeds 3")
	logger.Info("after balance", zap.Int("height", st.Height()), zap.Strings("levels", st.LevelOrder(5)))

	floor, _ := st.Floor(4)
	ceiling, _ := st.Ceiling(4)
	c.check(floor == 3 && ceiling == 5, "floor or ceiling of 4")
	c.check(st.SizeBetween(2, 7) == len(st.KeysBetween(2, 7)), "range count differs from range keys")

	return c.err()
}
