package bst

// Floor - Returns the largest key less than or equal to key
func (T *Tree[K, V]) Floor(key K) (floor K, found bool) {
	if isNaN(key) {
		return
	}

	x := T.root
	for x != nil {
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			floor, found = x.key, true
			x = x.right
		default:
			return x.key, true
		}
	}
	return
}

// Ceiling - Returns the smallest key greater than or equal to key
func (T *Tree[K, V]) Ceiling(key K) (ceiling K, found bool) {
	if isNaN(key) {
		return
	}

	x := T.root
	for x != nil {
		switch {
		case key > x.key:
			x = x.right
		case key < x.key:
			ceiling, found = x.key, true
			x = x.left
		default:
			return x.key, true
		}
	}
	return
}

// Rank - Returns the number of keys strictly less than key. Key does not have to be present, NaN ranks 0 (zero).
func (T *Tree[K, V]) Rank(key K) int {
	var r int
	if isNaN(key) {
		return r
	}

	x := T.root
	for x != nil {
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			r += size(x.left) + 1
			x = x.right
		default:
			return r + size(x.left)
		}
	}
	return r
}

// Select - Returns the key with exactly k smaller keys, found is false unless 0 <= k < Size()
func (T *Tree[K, V]) Select(k int) (key K, found bool) {
	if k < 0 || k >= T.Size() {
		return
	}

	x := T.root
	for x != nil {
		t := size(x.left)
		switch {
		case t > k:
			x = x.left
		case t < k:
			k -= t + 1
			x = x.right
		default:
			return x.key, true
		}
	}
	return
}

// Keys - Returns all keys in ascending order
func (T *Tree[K, V]) Keys() []K {
	if T.root == nil {
		return []K{}
	}

	lo, _ := T.Min()
	hi, _ := T.Max()
	return T.KeysBetween(lo, hi)
}

// KeysBetween - Returns the keys in [lo, hi] in ascending order. Subtrees that can not hold such keys are not visited.
func (T *Tree[K, V]) KeysBetween(lo, hi K) []K {
	keys := make([]K, 0)
	if isNaN(lo) || isNaN(hi) || lo > hi {
		return keys
	}

	var stack []*node[K, V]
	x := T.root
	for x != nil || len(stack) > 0 {
		for x != nil {
			stack = append(stack, x)
			if lo < x.key {
				x = x.left
			} else {
				x = nil
			}
		}

		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if x.key > hi {
			break
		}
		if x.key >= lo {
			keys = append(keys, x.key)
		}

		if x.key < hi {
			x = x.right
		} else {
			x = nil
		}
	}

	return keys
}

// SizeBetween - Returns the number of keys in [lo, hi], 0 (zero) if lo > hi
func (T *Tree[K, V]) SizeBetween(lo, hi K) int {
	if isNaN(lo) || isNaN(hi) || lo > hi {
		return 0
	}
	if T.Contains(hi) {
		return T.Rank(hi) - T.Rank(lo) + 1
	}
	return T.Rank(hi) - T.Rank(lo)
}
