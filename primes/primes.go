package primes

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"sort"
)

// primeWidth - Number of bytes per prime in the embedded table
const primeWidth int = 4

//go:embed primes.bin
var primeTable []byte

// Source - Serves prime numbers from a curated, monotonically increasing table.
// The table backs the hash map capacity selection, where both the table size and the
// secondary hash modulus must be prime for a double hashing probe sequence to visit
// every slot once and only once.
type Source struct {
	primes []int64
}

// NewSource - Returns a pointer to a new Source instance loaded from the embedded prime table.
//
// It returns:
//   - source which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSource() (source *Source, err error) {
	if len(primeTable)%primeWidth != 0 {
		err = fmt.Errorf("embedded prime table length %d is not a multiple of %d", len(primeTable), primeWidth)
		return
	}

	n := len(primeTable) / primeWidth
	table := make([]int64, n)
	for i := 0; i < n; i++ {
		table[i] = int64(binary.BigEndian.Uint32(primeTable[i*primeWidth:]))
	}

	source = &Source{primes: table}

	return
}

// NextPrimeAtLeast - Returns the smallest known prime greater than or equal to n.
//
// It returns:
//   - prime is the found prime
//   - err is of type ExhaustedPrimeTable if no prime in the table is large enough
func (S *Source) NextPrimeAtLeast(n int64) (prime int64, err error) {
	i := sort.Search(len(S.primes), func(i int) bool { return S.primes[i] >= n })
	if i == len(S.primes) {
		err = ExhaustedPrimeTable{msg: fmt.Sprintf("no prime at least %d in table", n)}
		return
	}

	prime = S.primes[i]

	return
}

// PreviousPrimeBelow - Returns the largest known prime strictly smaller than n.
//
// It returns:
//   - prime is the found prime
//   - err is of type ExhaustedPrimeTable if no prime in the table is small enough
func (S *Source) PreviousPrimeBelow(n int64) (prime int64, err error) {
	i := sort.Search(len(S.primes), func(i int) bool { return S.primes[i] >= n })
	if i == 0 {
		err = ExhaustedPrimeTable{msg: fmt.Sprintf("no prime below %d in table", n)}
		return
	}

	prime = S.primes[i-1]

	return
}

// MaxPrime - Returns the largest prime the table can serve
func (S *Source) MaxPrime() int64 {
	return S.primes[len(S.primes)-1]
}
