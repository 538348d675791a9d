package multiway

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Entry - Represents one key-value pair stored in the tree
type Entry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// node - Represents one node in the multiway search tree. It holds a sorted sequence of
// entries with unique keys and, unless it is a leaf, exactly one more child than it has
// entries. Every key in children[i] is strictly between entries[i-1].Key and entries[i].Key,
// with open bounds at the ends. Children are exclusively owned by their parent.
type node[K constraints.Ordered, V any] struct {
	entries  []Entry[K, V]
	children []*node[K, V]
}

// isLeaf - Returns true if the node has no children
func (N *node[K, V]) isLeaf() bool {
	return len(N.children) == 0
}

// findEntry - Binary-searches the node's sorted entries for a key.
//
// It returns:
//   - index is the position of the matching entry if found, otherwise the position where an
//     entry with the given key would be inserted, which is also the child to descend into
//   - found is true if an entry with the given key is present
func (N *node[K, V]) findEntry(key K) (index int, found bool) {
	index = sort.Search(len(N.entries), func(i int) bool { return N.entries[i].Key >= key })
	found = index < len(N.entries) && N.entries[index].Key == key

	return
}

// insertEntryAt - Inserts an entry at the given position, keeping the sorted order
func (N *node[K, V]) insertEntryAt(index int, entry Entry[K, V]) {
	N.entries = append(N.entries, Entry[K, V]{})
	copy(N.entries[index+1:], N.entries[index:])
	N.entries[index] = entry
}

// removeEntryAt - Removes the entry at the given position, keeping the sorted order
func (N *node[K, V]) removeEntryAt(index int) {
	copy(N.entries[index:], N.entries[index+1:])
	N.entries = N.entries[:len(N.entries)-1]
}

// insertChildAt - Inserts a child at the given position
func (N *node[K, V]) insertChildAt(index int, child *node[K, V]) {
	N.children = append(N.children, nil)
	copy(N.children[index+1:], N.children[index:])
	N.children[index] = child
}

// removeChildAt - Removes the child at the given position, handing over its ownership
func (N *node[K, V]) removeChildAt(index int) (child *node[K, V]) {
	child = N.children[index]
	copy(N.children[index:], N.children[index+1:])
	N.children[len(N.children)-1] = nil
	N.children = N.children[:len(N.children)-1]

	return
}

// split - Splits an overfull node around its median entry. The node keeps the lower half,
// a newly created node takes over the upper half together with the corresponding children,
// and the median entry is handed back for promotion into the parent.
//
// It returns:
//   - median is the entry to promote
//   - right is the newly created node holding everything above the median
func (N *node[K, V]) split() (median Entry[K, V], right *node[K, V]) {
	mid := len(N.entries) / 2
	median = N.entries[mid]

	right = &node[K, V]{
		entries: append([]Entry[K, V]{}, N.entries[mid+1:]...),
	}
	N.entries = N.entries[:mid]

	if !N.isLeaf() {
		right.children = append([]*node[K, V]{}, N.children[mid+1:]...)
		for i := mid + 1; i < len(N.children); i++ {
			N.children[i] = nil
		}
		N.children = N.children[:mid+1]
	}

	return
}
