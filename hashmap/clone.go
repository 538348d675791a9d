package hashmap

import "github.com/DAA2020-team/midterm-project/internal/hash"

// Clone - Returns a pointer to a new Map instance equivalent to, but independent of, this one.
// Slots, size and the cumulative collision counter are copied, so the clone behaves exactly as
// the original would from here on. Values are copied shallowly. A custom hash algorithm is
// shared with the clone, hence cloning a map built with WithHashAlgorithm is only safe if the
// algorithm instance tolerates table size updates from both maps.
func (M *Map[V]) Clone() (clone *Map[V]) {
	clone = &Map[V]{
		slots:             make([]slot[V], len(M.slots)),
		size:              M.size,
		collisions:        M.collisions,
		loadFactor:        M.loadFactor,
		growthFactor:      M.growthFactor,
		hashAlgorithm:     M.hashAlgorithm,
		internalAlgorithm: M.internalAlgorithm,
		primeSource:       M.primeSource,
	}
	copy(clone.slots, M.slots)

	if M.internalAlgorithm {
		clone.hashAlgorithm = hash.NewDoubleHashAlgorithm(int64(len(M.slots)))
	}

	return
}
