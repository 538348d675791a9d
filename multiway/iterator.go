package multiway

import "golang.org/x/exp/constraints"

// frame - One level of the iterator's descent, index being the next entry to yield
type frame[K constraints.Ordered, V any] struct {
	node  *node[K, V]
	index int
}

// Iterator - Is used to iterate over the tree's entries one by one in ascending key order,
// visiting subtree, entry, subtree recursively. Every call to Tree.InOrder returns a fresh
// iterator, so the traversal can be restarted at will. The iterator reads the live tree,
// hence the tree must not be mutated while an iteration is in progress.
type Iterator[K constraints.Ordered, V any] struct {
	stack []frame[K, V]
}

// InOrder - Returns a pointer to a new Iterator positioned before the smallest entry
func (T *Tree[K, V]) InOrder() *Iterator[K, V] {
	iterator := &Iterator[K, V]{}
	iterator.descendLeft(T.root)

	return iterator
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next
func (I *Iterator[K, V]) HasNext() bool {
	return len(I.stack) > 0
}

// Next - Returns the next entry in ascending key order.
//
// It returns:
//   - entry is the next entry
//   - err is of type NotFound if the iteration is already exhausted when calling this function
func (I *Iterator[K, V]) Next() (entry Entry[K, V], err error) {
	if len(I.stack) == 0 {
		err = NotFound{msg: "iteration exhausted"}
		return
	}

	top := &I.stack[len(I.stack)-1]
	entry = top.node.entries[top.index]
	top.index++

	if top.node.isLeaf() {
		I.popExhausted()
	} else {
		// The subtree between the yielded entry and its successor comes next
		I.descendLeft(top.node.children[top.index])
	}

	return
}

// descendLeft - Pushes the path from n down to its leftmost leaf onto the stack
func (I *Iterator[K, V]) descendLeft(n *node[K, V]) {
	for n != nil {
		I.stack = append(I.stack, frame[K, V]{node: n})
		if n.isLeaf() {
			return
		}
		n = n.children[0]
	}
}

// popExhausted - Pops frames whose entries have all been yielded, leaving either an empty
// stack or a frame with an entry still to yield on top
func (I *Iterator[K, V]) popExhausted() {
	for len(I.stack) > 0 {
		top := &I.stack[len(I.stack)-1]
		if top.index < len(top.node.entries) {
			return
		}
		I.stack = I.stack[:len(I.stack)-1]
	}
}
