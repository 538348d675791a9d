package hash

import "github.com/spaolacci/murmur3"

// DoubleHashAlgorithm - The internally used slot selection algorithm is implemented using
// murmur3.Sum128 to create two independent hash values over the key, the first feeding
// HashFunc1 as primary function and the second feeding HashFunc2 as probing step function.
type DoubleHashAlgorithm struct {
	tableSize int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
//   - tableSize is the number of slots the hash map will address, the caller is responsible
//     for it being a prime number
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// Contrary to rounding up internally, the algorithm trusts the size it is given since the
// hash map selects its capacities from a prime source, which already guarantees that the
// probe sequence iterates over the entirety of the table's slots once and only once.
//   - tableSize is the number of slots the hash map will address
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (slot) between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key []byte) int64 {
	h1, _ := murmur3.Sum128(key)
	return int64(h1 % uint64(D.tableSize))
}

// HashFunc2 - Given key it generates an offset probing value that will be used together
// with the value from HashFunc1 in calls to ProbeIteration. The value is in the range
// 1 to table size - 1, hence never zero and always coprime with a prime table size.
func (D *DoubleHashAlgorithm) HashFunc2(key []byte) int64 {
	_, h2 := murmur3.Sum128(key)

	return 1 + int64(h2%uint64(D.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
// from HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those values
// rather than using the actual key as input.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % D.tableSize
}
