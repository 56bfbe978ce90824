// Package bst implements an ordered symbol table on an unbalanced binary search tree. Every node caches the size of
// its subtree which gives rank and select in time proportional to the height. Balance rebuilds the tree once, nothing
// keeps it balanced afterwards.
package bst

import (
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/internal/logutil"
	"github.com/gostonefire/symboltable/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

type node[K constraints.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
	n     int
}

// Tree - Binary search tree with subtree sizes. The zero value is not usable, use New.
type Tree[K constraints.Ordered, V any] struct {
	root   *node[K, V]
	logger *zap.Logger
}

type options struct {
	logger *zap.Logger
}

// Option - Functional option for New
type Option func(*options)

// WithLogger - Sets the logger used for debug output, nil disables logging
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New - Returns a new, empty tree
func New[K constraints.Ordered, V any](opts ...Option) *Tree[K, V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[K, V]{logger: logutil.OrNop(o.logger)}
}

// isNaN - Returns true for a floating point NaN, which compares false with every key and so is never in the tree
func isNaN[K constraints.Ordered](key K) bool {
	return key != key
}

func size[K constraints.Ordered, V any](x *node[K, V]) int {
	if x == nil {
		return 0
	}
	return x.n
}

func (x *node[K, V]) resize() {
	x.n = size(x.left) + size(x.right) + 1
}

// Size - Returns the number of keys
func (T *Tree[K, V]) Size() int {
	return size(T.root)
}

// IsEmpty - Returns true if the tree holds no keys
func (T *Tree[K, V]) IsEmpty() bool {
	return T.root == nil
}

// Get - Returns the value stored under key
func (T *Tree[K, V]) Get(key K) (value V, found bool) {
	if x := T.find(key); x != nil {
		value, found = x.value, true
	}
	return
}

// Contains - Returns true if key is in the tree
func (T *Tree[K, V]) Contains(key K) bool {
	return T.find(key) != nil
}

// Put - Inserts key with value, or replaces the value if key is already present. The shape of the tree does not change
// on replace.
//
// It returns an error of type crt.InvalidEntry if value is nil or key is NaN.
func (T *Tree[K, V]) Put(key K, value V) error {
	if isNaN(key) || utils.IsNil(value) {
		return crt.InvalidEntry{}
	}

	T.root = put(T.root, key, value)
	return nil
}

// Delete - Removes key from the tree. A node with two children is replaced by its successor.
// It returns false if key was not present.
func (T *Tree[K, V]) Delete(key K) bool {
	if isNaN(key) || !T.Contains(key) {
		return false
	}

	T.root = deleteKey(T.root, key)
	return true
}

// Min - Returns the smallest key, or crt.EmptyStructure if the tree is empty
func (T *Tree[K, V]) Min() (key K, err error) {
	if T.root == nil {
		err = crt.EmptyStructure{}
		return
	}

	key = minNode(T.root).key
	return
}

// Max - Returns the largest key, or crt.EmptyStructure if the tree is empty
func (T *Tree[K, V]) Max() (key K, err error) {
	if T.root == nil {
		err = crt.EmptyStructure{}
		return
	}

	x := T.root
	for x.right != nil {
		x = x.right
	}
	key = x.key
	return
}

// DeleteMin - Removes the smallest key, or returns crt.EmptyStructure if the tree is empty
func (T *Tree[K, V]) DeleteMin() error {
	if T.root == nil {
		return crt.EmptyStructure{}
	}

	T.root = deleteMin(T.root)
	return nil
}

// DeleteMax - Removes the largest key, or returns crt.EmptyStructure if the tree is empty
func (T *Tree[K, V]) DeleteMax() error {
	if T.root == nil {
		return crt.EmptyStructure{}
	}

	T.root = deleteMax(T.root)
	return nil
}

func (T *Tree[K, V]) find(key K) *node[K, V] {
	if isNaN(key) {
		return nil
	}

	x := T.root
	for x != nil {
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			x = x.right
		default:
			return x
		}
	}
	return nil
}

func put[K constraints.Ordered, V any](x *node[K, V], key K, value V) *node[K, V] {
	if x == nil {
		return &node[K, V]{key: key, value: value, n: 1}
	}

	switch {
	case key < x.key:
		x.left = put(x.left, key, value)
	case key > x.key:
		x.right = put(x.right, key, value)
	default:
		x.value = value
	}
	x.resize()

	return x
}

func deleteKey[K constraints.Ordered, V any](x *node[K, V], key K) *node[K, V] {
	if x == nil {
		return nil
	}

	switch {
	case key < x.key:
		x.left = deleteKey(x.left, key)
	case key > x.key:
		x.right = deleteKey(x.right, key)
	default:
		if x.right == nil {
			return x.left
		}
		if x.left == nil {
			return x.right
		}
		t := x
		x = minNode(t.right)
		x.right = deleteMin(t.right)
		x.left = t.left
	}
	x.resize()

	return x
}

func minNode[K constraints.Ordered, V any](x *node[K, V]) *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

func deleteMin[K constraints.Ordered, V any](x *node[K, V]) *node[K, V] {
	if x.left == nil {
		return x.right
	}

	x.left = deleteMin(x.left)
	x.resize()

	return x
}

func deleteMax[K constraints.Ordered, V any](x *node[K, V]) *node[K, V] {
	if x.right == nil {
		return x.left
	}

	x.right = deleteMax(x.right)
	x.resize()

	return x
}
