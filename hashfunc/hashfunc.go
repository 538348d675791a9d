package hashfunc

// HashAlgorithm - Interface that permits an implementation using the hash map to supply a custom
// bucket selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash map and again on every resize. Hence, if a custom
	// hash algorithm is supplied that implements this interface and the instance is already having a
	// table size, it will be overwritten by the capacity the hash map settles on.
	//   - tableSize is the number of slots the hash map will address, always a prime
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1.
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key []byte) int64

	// HashFunc2 - Given key it generates an offset probing step that will be used together with the value
	// from HashFunc1 in calls to ProbeIteration. The step must never be zero, and with a prime table size
	// it is guaranteed coprime with the table size, making the probe sequence a full permutation of all slots.
	HashFunc2(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash
	// values from HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes
	// those values rather than using the actual key as input.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
