package multiway

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree - A multiway search tree of order m, generalizing a binary search tree to nodes
// holding up to m-1 sorted unique entries and up to m children. Every node except the root
// holds at least ceil(m/2)-1 entries and all leaves are at the same depth, which keeps the
// height, and with it the cost of every operation, logarithmic in the number of entries.
//
// The tree provides no internal synchronization. If an instance is shared between
// goroutines the caller must serialize access, e.g. with one mutex per instance held
// for the duration of each operation.
type Tree[K constraints.Ordered, V any] struct {
	order      int
	minEntries int
	maxEntries int
	root       *node[K, V]
	size       int
}

// New - Returns a pointer to a new empty Tree instance of the given order.
//   - order is the maximum number of children per node, it must be at least 3
//
// It returns:
//   - tree which is a pointer to the created instance
//   - err which is of type InvalidOrder if order is less than 3
func New[K constraints.Ordered, V any](order int) (tree *Tree[K, V], err error) {
	if order < 3 {
		err = InvalidOrder{msg: fmt.Sprintf("order must be at least 3, got %d", order)}
		return
	}

	tree = &Tree[K, V]{
		order:      order,
		minEntries: (order+1)/2 - 1,
		maxEntries: order - 1,
	}

	return
}

// Len - Returns the total number of entries in the tree
func (T *Tree[K, V]) Len() int {
	return T.size
}

// IsEmpty - Returns true if the tree does not contain any entry
func (T *Tree[K, V]) IsEmpty() bool {
	return T.size == 0
}

// Height - Returns the number of levels in the tree, zero when empty.
// Since all leaves are at the same depth this is the length of every root-to-leaf path.
func (T *Tree[K, V]) Height() (height int) {
	for n := T.root; n != nil; {
		height++
		if n.isLeaf() {
			break
		}
		n = n.children[0]
	}

	return
}

// Search - Returns the value associated with the given key.
// It descends from the root, at each node binary-searching the sorted entries to either
// match or select the child whose open interval contains the key.
//   - key is the key to search for
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type NotFound if no entry with the given key is present
func (T *Tree[K, V]) Search(key K) (value V, err error) {
	for n := T.root; n != nil; {
		index, found := n.findEntry(key)
		if found {
			value = n.entries[index].Value
			return
		}
		if n.isLeaf() {
			break
		}
		n = n.children[index]
	}

	err = NotFound{msg: fmt.Sprintf("no entry found for key %v", key)}

	return
}

// Insert - Adds a new entry to the tree.
// The insert descends to the leaf where the key belongs and places the entry in its sorted
// position. A leaf growing beyond capacity splits around its median entry, which is promoted
// into the parent; promotions may cascade, and if the root itself splits a new root is
// created, increasing the tree's height by one.
//   - key is the key to insert
//   - value is the value to associate with key
//
// It returns:
//   - err is of type DuplicateKey if an entry with the given key is already present
func (T *Tree[K, V]) Insert(key K, value V) (err error) {
	if T.root == nil {
		T.root = &node[K, V]{entries: []Entry[K, V]{{Key: key, Value: value}}}
		T.size = 1
		return
	}

	median, right, err := T.insertInto(T.root, key, value)
	if err != nil {
		return
	}

	if right != nil {
		T.root = &node[K, V]{
			entries:  []Entry[K, V]{median},
			children: []*node[K, V]{T.root, right},
		}
	}

	T.size++

	return
}

// insertInto - Recursively inserts an entry into the subtree rooted at n.
// When the insertion makes n overfull, n is split and the median entry handed back to the
// caller together with the new right node, to be placed in the parent.
func (T *Tree[K, V]) insertInto(n *node[K, V], key K, value V) (median Entry[K, V], right *node[K, V], err error) {
	index, found := n.findEntry(key)
	if found {
		err = DuplicateKey{msg: fmt.Sprintf("an entry with key %v is already present", key)}
		return
	}

	if n.isLeaf() {
		n.insertEntryAt(index, Entry[K, V]{Key: key, Value: value})
	} else {
		var childMedian Entry[K, V]
		var childRight *node[K, V]

		childMedian, childRight, err = T.insertInto(n.children[index], key, value)
		if err != nil || childRight == nil {
			return
		}

		// The promoted median sits exactly where the search left off
		n.insertEntryAt(index, childMedian)
		n.insertChildAt(index+1, childRight)
	}

	if len(n.entries) > T.maxEntries {
		median, right = n.split()
	}

	return
}

// Remove - Removes the entry with the given key.
// A key living in an internal node is first swapped with its in-order predecessor, so the
// removal always takes place in a leaf. A node shrinking below minimum occupancy first tries
// to borrow an entry from an adjacent sibling, rotating through the parent; when no sibling
// has a surplus it is merged with a sibling and the shared parent entry, possibly cascading
// up to the root. A root left with zero entries and one child is replaced by that child,
// decreasing the tree's height by one.
//   - key is the key to remove
//
// It returns:
//   - err is of type NotFound if no entry with the given key is present
func (T *Tree[K, V]) Remove(key K) (err error) {
	if T.root == nil {
		err = NotFound{msg: fmt.Sprintf("no entry found for key %v", key)}
		return
	}

	err = T.removeFrom(T.root, key)
	if err != nil {
		return
	}

	// A merge may have drained the root, in which case its single remaining child takes over
	if len(T.root.entries) == 0 {
		if T.root.isLeaf() {
			T.root = nil
		} else {
			T.root = T.root.children[0]
		}
	}

	T.size--

	return
}

// removeFrom - Recursively removes an entry from the subtree rooted at n.
// The removal always takes place in a leaf, internal keys being swapped with their in-order
// predecessor first. On the way back up, a child left below minimum occupancy is repaired by
// borrowing from a sibling or merging, which in turn may underflow n for its own caller to
// repair, cascading up to the root.
func (T *Tree[K, V]) removeFrom(n *node[K, V], key K) (err error) {
	index, found := n.findEntry(key)

	if found {
		if n.isLeaf() {
			n.removeEntryAt(index)
			return
		}

		// Swap with the in-order predecessor, then remove it from the left subtree
		predecessor := maxEntry(n.children[index])
		n.entries[index] = predecessor
		err = T.removeFrom(n.children[index], predecessor.Key)
	} else {
		if n.isLeaf() {
			err = NotFound{msg: fmt.Sprintf("no entry found for key %v", key)}
			return
		}

		err = T.removeFrom(n.children[index], key)
	}

	if err == nil && len(n.children[index].entries) < T.minEntries {
		T.rebalance(n, index)
	}

	return
}

// rebalance - Repairs the underfull child at the given position. It first tries to borrow an
// entry from an adjacent sibling, rotating through the parent; when no sibling has a surplus
// the child is merged with a sibling and the parent entry separating them, shrinking n by
// one entry.
func (T *Tree[K, V]) rebalance(n *node[K, V], index int) {
	if index > 0 && len(n.children[index-1].entries) > T.minEntries {
		T.borrowFromLeft(n, index)
		return
	}

	if index < len(n.children)-1 && len(n.children[index+1].entries) > T.minEntries {
		T.borrowFromRight(n, index)
		return
	}

	if index < len(n.children)-1 {
		T.mergeChildren(n, index)
	} else {
		T.mergeChildren(n, index-1)
	}
}

// borrowFromLeft - Rotates one entry from the left sibling through the parent into the
// child at the given position
func (T *Tree[K, V]) borrowFromLeft(n *node[K, V], index int) {
	child := n.children[index]
	left := n.children[index-1]

	child.insertEntryAt(0, n.entries[index-1])
	n.entries[index-1] = left.entries[len(left.entries)-1]
	left.removeEntryAt(len(left.entries) - 1)

	if !left.isLeaf() {
		child.insertChildAt(0, left.removeChildAt(len(left.children)-1))
	}
}

// borrowFromRight - Rotates one entry from the right sibling through the parent into the
// child at the given position
func (T *Tree[K, V]) borrowFromRight(n *node[K, V], index int) {
	child := n.children[index]
	right := n.children[index+1]

	child.entries = append(child.entries, n.entries[index])
	n.entries[index] = right.entries[0]
	right.removeEntryAt(0)

	if !right.isLeaf() {
		child.children = append(child.children, right.removeChildAt(0))
	}
}

// mergeChildren - Merges the child at the given position, the parent entry separating it
// from its right sibling, and that sibling into a single node. The emptied sibling is
// discarded, its children reparented to the merged node.
func (T *Tree[K, V]) mergeChildren(n *node[K, V], index int) {
	child := n.children[index]
	right := n.children[index+1]

	child.entries = append(child.entries, n.entries[index])
	child.entries = append(child.entries, right.entries...)
	child.children = append(child.children, right.children...)

	n.removeEntryAt(index)
	n.removeChildAt(index + 1)
}

// maxEntry - Returns the largest entry in the subtree rooted at n
func maxEntry[K constraints.Ordered, V any](n *node[K, V]) Entry[K, V] {
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n.entries[len(n.entries)-1]
}
