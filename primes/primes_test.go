//go:build unit

package primes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSource(t *testing.T) {
	t.Run("loads the embedded prime table", func(t *testing.T) {
		// Execute
		source, err := NewSource()

		// Check
		assert.NoError(t, err, "creates prime source")
		assert.Equal(t, int64(2), source.primes[0], "table starts at the first prime")
		assert.Equal(t, int64(99991), source.MaxPrime(), "correct largest prime")

		for i := 1; i < len(source.primes); i++ {
			if source.primes[i] <= source.primes[i-1] {
				assert.Fail(t, "table is not monotonically increasing")
				break
			}
		}
	})
}

func TestSource_NextPrimeAtLeast(t *testing.T) {
	t.Run("returns n itself when n is prime", func(t *testing.T) {
		// Prepare
		source, err := NewSource()
		assert.NoError(t, err, "creates prime source")

		// Execute
		prime, err := source.NextPrimeAtLeast(17)

		// Check
		assert.NoError(t, err, "serves prime")
		assert.Equal(t, int64(17), prime, "correct prime")
	})

	t.Run("returns the smallest prime above a composite", func(t *testing.T) {
		// Prepare
		source, err := NewSource()
		assert.NoError(t, err, "creates prime source")

		// Execute
		prime, err := source.NextPrimeAtLeast(14)

		// Check
		assert.NoError(t, err, "serves prime")
		assert.Equal(t, int64(17), prime, "correct prime")
	})

	t.Run("fails when the table is exhausted", func(t *testing.T) {
		// Prepare
		source, err := NewSource()
		assert.NoError(t, err, "creates prime source")

		// Execute
		_, err = source.NextPrimeAtLeast(source.MaxPrime() + 1)

		// Check
		assert.ErrorAs(t, err, &ExhaustedPrimeTable{}, "correct error type")
	})
}

func TestSource_PreviousPrimeBelow(t *testing.T) {
	t.Run("returns the largest prime strictly below n", func(t *testing.T) {
		// Prepare
		source, err := NewSource()
		assert.NoError(t, err, "creates prime source")

		// Execute
		prime, err := source.PreviousPrimeBelow(17)

		// Check
		assert.NoError(t, err, "serves prime")
		assert.Equal(t, int64(13), prime, "correct prime")
	})

	t.Run("fails when no smaller prime exists", func(t *testing.T) {
		// Prepare
		source, err := NewSource()
		assert.NoError(t, err, "creates prime source")

		// Execute
		_, err = source.PreviousPrimeBelow(2)

		// Check
		assert.ErrorAs(t, err, &ExhaustedPrimeTable{}, "correct error type")
	})
}
