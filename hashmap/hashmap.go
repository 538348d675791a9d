package hashmap

import (
	"fmt"

	"github.com/DAA2020-team/midterm-project/hashfunc"
	"github.com/DAA2020-team/midterm-project/internal/hash"
	"github.com/DAA2020-team/midterm-project/primes"
)

// slotEmpty - State indicating a slot that is or has never been in use
const slotEmpty uint8 = 0

// slotOccupied - State indicating a slot that is in use
const slotOccupied uint8 = 1

// slotDeleted - State indicating a slot that has been in use but was deleted.
// A deleted slot must be probed over during search but may be reclaimed by an insert.
const slotDeleted uint8 = 2

// defaultLoadFactor - Highest tolerated ratio of live entries to capacity before a resize
const defaultLoadFactor float64 = 0.75

// defaultGrowthFactor - Multiplier applied to capacity when selecting the resize target
const defaultGrowthFactor int64 = 2

// slot - Represents one slot in the hash table
type slot[V any] struct {
	state uint8
	key   string
	value V
}

// Map - An in-memory hash map using open addressing with double hashing as collision
// resolution technique. The table capacity is always a prime number served by a prime
// source, which together with a never-zero probing step guarantees that the probe
// sequence for any key is a full permutation of all slots.
//
// The map provides no internal synchronization. If an instance is shared between
// goroutines the caller must serialize access, e.g. with one mutex per instance held
// for the duration of each operation.
type Map[V any] struct {
	slots             []slot[V]
	size              int64
	collisions        int64
	loadFactor        float64
	growthFactor      int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	primeSource       *primes.Source
}

// config - Collects constructor options before the table is allocated
type config struct {
	loadFactor    float64
	growthFactor  int64
	hashAlgorithm hashfunc.HashAlgorithm
	primeSource   *primes.Source
}

// Option - Configures a Map beyond its defaults in the call to New
type Option func(c *config)

// WithLoadFactor - Sets the highest tolerated ratio of live entries to capacity.
// Once an insert pushes the ratio above it the table is resized. Values outside
// (0, 1) are ignored and the default of 0.75 kept.
func WithLoadFactor(loadFactor float64) Option {
	return func(c *config) {
		if loadFactor > 0 && loadFactor < 1 {
			c.loadFactor = loadFactor
		}
	}
}

// WithGrowthFactor - Sets the capacity multiplier used when selecting the resize target,
// which becomes the smallest known prime at least growthFactor times the current capacity.
// Values below 2 are ignored and the default of 2 kept.
func WithGrowthFactor(growthFactor int64) Option {
	return func(c *config) {
		if growthFactor >= 2 {
			c.growthFactor = growthFactor
		}
	}
}

// WithHashAlgorithm - Supplies a custom hash algorithm following the hashfunc.HashAlgorithm
// interface instead of the internal double hashing over murmur3.
func WithHashAlgorithm(hashAlgorithm hashfunc.HashAlgorithm) Option {
	return func(c *config) {
		c.hashAlgorithm = hashAlgorithm
	}
}

// WithPrimeSource - Supplies a prime source instance to share between maps, saving the
// cost of parsing the embedded prime table once per map.
func WithPrimeSource(source *primes.Source) Option {
	return func(c *config) {
		c.primeSource = source
	}
}

// New - Returns a pointer to a new Map instance with an initial capacity of the smallest
// known prime at least initialCapacity.
//   - initialCapacity is the requested number of slots before any resize, it must be a positive number
//   - options are any of WithLoadFactor, WithGrowthFactor, WithHashAlgorithm and WithPrimeSource
//
// It returns:
//   - hashMap which is a pointer to the created instance
//   - err which is of type InvalidCapacity if initialCapacity is zero or negative, of type
//     primes.ExhaustedPrimeTable if no prime can serve the capacity, or a standard error
func New[V any](initialCapacity int64, options ...Option) (hashMap *Map[V], err error) {
	if initialCapacity <= 0 {
		err = InvalidCapacity{msg: fmt.Sprintf("initial capacity must be a positive value, got %d", initialCapacity)}
		return
	}

	c := config{
		loadFactor:   defaultLoadFactor,
		growthFactor: defaultGrowthFactor,
	}
	for _, option := range options {
		option(&c)
	}

	if c.primeSource == nil {
		c.primeSource, err = primes.NewSource()
		if err != nil {
			err = fmt.Errorf("error while loading prime source: %s", err)
			return
		}
	}

	capacity, err := c.primeSource.NextPrimeAtLeast(initialCapacity)
	if err != nil {
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if c.hashAlgorithm == nil {
		c.hashAlgorithm = hash.NewDoubleHashAlgorithm(capacity)
		internalAlg = true
	} else {
		c.hashAlgorithm.SetTableSize(capacity)
	}

	hashMap = &Map[V]{
		slots:             make([]slot[V], capacity),
		size:              0,
		collisions:        0,
		loadFactor:        c.loadFactor,
		growthFactor:      c.growthFactor,
		hashAlgorithm:     c.hashAlgorithm,
		internalAlgorithm: internalAlg,
		primeSource:       c.primeSource,
	}

	return
}

// Len - Returns the number of live entries in the map
func (M *Map[V]) Len() int64 {
	return M.size
}

// Capacity - Returns the current capacity of the table
func (M *Map[V]) Capacity() int64 {
	return int64(len(M.slots))
}

// Collisions - Returns the number of collisions encountered during the lifetime of the map.
// Every probe step beyond the first attempt while inserting counts as one collision, and the
// counter survives resizes.
func (M *Map[V]) Collisions() int64 {
	return M.collisions
}

// IsEmpty - Returns true if the map does not contain any entry
func (M *Map[V]) IsEmpty() bool {
	return M.size == 0
}

// Clear - Removes all entries, keeping the current capacity. Contrary to a resize this
// also resets the collision counter, since the table starts a new lifetime.
func (M *Map[V]) Clear() {
	M.slots = make([]slot[V], len(M.slots))
	M.size = 0
	M.collisions = 0
}
