package hashmap

import "fmt"

// Insert - Updates an existing entry with a new value or adds it if no existing is found with same key.
// Each probe step beyond the first attempt increments the collision counter. If the probe sequence is
// exhausted without finding a free slot, which can happen under heavy tombstone load, the table is
// resized and the probe restarted in the enlarged table. After placement the table is resized whenever
// the load factor threshold is crossed, into the smallest known prime at least growth factor times the
// current capacity, rehashing every live entry.
//   - key is the key to insert
//   - value is the value to associate with key
//
// It returns:
//   - err is of type primes.ExhaustedPrimeTable if a needed resize cannot be served, or a standard
//     error, if something went wrong
func (M *Map[V]) Insert(key string, value V) (err error) {
	index, found, full := M.probeForInsert(key)
	if full {
		err = M.resize(M.growthFactor * M.Capacity())
		if err != nil {
			return
		}

		index, found, full = M.probeForInsert(key)
		if full {
			// The enlarged table has empty slots, so ending up here means the probing algorithm is broken
			err = fmt.Errorf("probing algorithm found no free slot in freshly resized table")
			return
		}
	}

	if found {
		M.slots[index].value = value
		return
	}

	M.slots[index] = slot[V]{state: slotOccupied, key: key, value: value}
	M.size++

	if float64(M.size) > M.loadFactor*float64(M.Capacity()) {
		err = M.resize(M.growthFactor * M.Capacity())
	}

	return
}

// Search - Returns the value associated with the given key.
// The probe sequence is followed until a live match or an empty slot, deleted slots are
// probed over but do not stop the search.
//   - key is the key to search for
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type NotFound if no entry with the given key is present
func (M *Map[V]) Search(key string) (value V, err error) {
	index, found := M.probeForSearch(key)
	if !found {
		err = NotFound{msg: fmt.Sprintf("no entry found for key %q", key)}
		return
	}

	value = M.slots[index].value

	return
}

// Delete - Deletes the entry with the given key by marking its slot deleted.
// The slot remains a tombstone that keeps probe sequences of other keys intact, hence
// deletion never shrinks the table.
//   - key is the key to delete
//
// It returns:
//   - err is of type NotFound if no entry with the given key is present
func (M *Map[V]) Delete(key string) (err error) {
	index, found := M.probeForSearch(key)
	if !found {
		err = NotFound{msg: fmt.Sprintf("no entry found for key %q", key)}
		return
	}

	var zero V
	M.slots[index] = slot[V]{state: slotDeleted, value: zero}
	M.size--

	return
}

// Keys - Returns the keys of all live entries, in table scan order
func (M *Map[V]) Keys() (keys []string) {
	keys = make([]string, 0, M.size)
	for i := range M.slots {
		if M.slots[i].state == slotOccupied {
			keys = append(keys, M.slots[i].key)
		}
	}

	return
}
