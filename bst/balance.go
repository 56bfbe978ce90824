package bst

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Balance - Rebuilds the tree into a complete binary search tree over the current keys. Each sub range of the sorted
// nodes is rooted at its middle node, the upper one for even lengths. Nodes are relinked, not copied.
func (T *Tree[K, V]) Balance() {
	if T.root == nil {
		return
	}

	heightBefore := T.Height()
	nodes := T.inOrder()
	T.root = build(nodes, 0, len(nodes)-1)

	T.logger.Debug("tree balanced",
		zap.Int("nodes", len(nodes)),
		zap.Int("heightBefore", heightBefore),
		zap.Int("heightAfter", T.Height()),
	)
}

// Height - Returns the number of nodes on the longest path from the root to a leaf
func (T *Tree[K, V]) Height() (height int) {
	if T.root == nil {
		return
	}

	level := []*node[K, V]{T.root}
	for len(level) > 0 {
		height++
		var next []*node[K, V]
		for _, x := range level {
			if x.left != nil {
				next = append(next, x.left)
			}
			if x.right != nil {
				next = append(next, x.right)
			}
		}
		level = next
	}

	return
}

// LevelOrder - Returns the values of the subtree rooted at key from in breadth first order, empty if from is absent
func (T *Tree[K, V]) LevelOrder(from K) []V {
	values := make([]V, 0)
	x := T.find(from)
	if x == nil {
		return values
	}

	queue := []*node[K, V]{x}
	for len(queue) > 0 {
		x, queue = queue[0], queue[1:]
		values = append(values, x.value)
		if x.left != nil {
			queue = append(queue, x.left)
		}
		if x.right != nil {
			queue = append(queue, x.right)
		}
	}

	return values
}

// Corrupt - Returns true if the tree breaks key order or a cached subtree size is wrong
func (T *Tree[K, V]) Corrupt() bool {
	_, ok := check(T.root, nil, nil)
	return !ok
}

// check - Validates the subtree at x whose keys must lie strictly between the keys of lo and hi, nil meaning unbounded
func check[K constraints.Ordered, V any](x *node[K, V], lo, hi *node[K, V]) (n int, ok bool) {
	if x == nil {
		return 0, true
	}
	if (lo != nil && x.key <= lo.key) || (hi != nil && x.key >= hi.key) {
		return
	}

	nl, okl := check(x.left, lo, x)
	if !okl {
		return
	}
	nr, okr := check(x.right, x, hi)
	if !okr {
		return
	}

	n = nl + nr + 1
	ok = n == x.n
	return
}

func (T *Tree[K, V]) inOrder() []*node[K, V] {
	nodes := make([]*node[K, V], 0, T.Size())
	var stack []*node[K, V]
	x := T.root
	for x != nil || len(stack) > 0 {
		for x != nil {
			stack = append(stack, x)
			x = x.left
		}
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, x)
		x = x.right
	}
	return nodes
}

func build[K constraints.Ordered, V any](nodes []*node[K, V], start, stop int) *node[K, V] {
	if start > stop {
		return nil
	}

	mid := (start + stop + 1) / 2
	x := nodes[mid]
	x.left = build(nodes, start, mid-1)
	x.right = build(nodes, mid+1, stop)
	x.resize()

	return x
}
