package hashmap

import "fmt"

// probeForSearch - Is the probing collision resolution algorithm for finding a live entry.
// The probe sequence is followed until a live match, an empty slot or until every slot has
// been examined. Deleted slots are probed over.
//
// It returns:
//   - index is the slot holding the live match, valid only when found is true
//   - found is true if a live entry with the given key was reached
func (M *Map[V]) probeForSearch(key string) (index int64, found bool) {
	capacity := int64(len(M.slots))
	var probe, n int64

	hf1Value := M.hashAlgorithm.HashFunc1([]byte(key))
	hf2Value := M.hashAlgorithm.HashFunc2([]byte(key))

	iMax := capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = M.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe >= 0 && probe < capacity {
			switch M.slots[probe].state {
			case slotEmpty:
				return

			case slotOccupied:
				if M.slots[probe].key == key {
					index = probe
					found = true
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= capacity {
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	return
}

// probeForInsert - Is the probing collision resolution algorithm for finding a slot to insert in.
// A live match takes precedence, otherwise the first deleted slot seen is cached and reclaimed
// once the sequence reaches an empty slot or is exhausted. Every probe step beyond the first
// attempt increments the collision counter.
//
// It returns:
//   - index is the selected slot, valid only when full is false
//   - found is true if the slot holds a live entry with the same key, to be overwritten in place
//   - full is true if the whole probe sequence was exhausted without any reusable slot
func (M *Map[V]) probeForInsert(key string) (index int64, found bool, full bool) {
	capacity := int64(len(M.slots))
	var deletedIndex int64
	var hasDeleted bool
	var probe, n int64

	hf1Value := M.hashAlgorithm.HashFunc1([]byte(key))
	hf2Value := M.hashAlgorithm.HashFunc2([]byte(key))

	iMax := capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = M.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe >= 0 && probe < capacity {
			switch M.slots[probe].state {
			case slotEmpty:
				if hasDeleted {
					index = deletedIndex
				} else {
					index = probe
				}
				return

			case slotOccupied:
				if M.slots[probe].key == key {
					index = probe
					found = true
					return
				}

			case slotDeleted:
				if !hasDeleted {
					deletedIndex = probe
					hasDeleted = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			M.collisions++
			if n >= capacity {
				if hasDeleted {
					index = deletedIndex
				} else {
					full = true
				}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	full = true
	return
}

// resize - Rebuilds the table into the smallest known prime capacity at least minCapacity,
// rehashing every live entry and dropping tombstones. The cumulative collision counter is
// deliberately kept across resizes.
func (M *Map[V]) resize(minCapacity int64) (err error) {
	newCapacity, err := M.primeSource.NextPrimeAtLeast(minCapacity)
	if err != nil {
		return
	}

	old := M.slots
	M.hashAlgorithm.SetTableSize(newCapacity)
	M.slots = make([]slot[V], newCapacity)
	M.size = 0

	for i := range old {
		if old[i].state != slotOccupied {
			continue
		}

		index, _, full := M.probeForInsert(old[i].key)
		if full {
			err = fmt.Errorf("probing algorithm found no free slot while rehashing into capacity %d", newCapacity)
			return
		}

		M.slots[index] = slot[V]{state: slotOccupied, key: old[i].key, value: old[i].value}
		M.size++
	}

	return
}
