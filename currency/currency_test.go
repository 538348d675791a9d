//go:build unit

package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DAA2020-team/midterm-project/hashmap"
)

func TestNew(t *testing.T) {
	t.Run("creates a currency from a valid code", func(t *testing.T) {
		// Execute
		c, err := New("EUR")

		// Check
		assert.NoError(t, err, "creates currency")
		assert.Equal(t, "EUR", c.Code(), "correct code")
		assert.False(t, c.HasDenominations(), "starts without denominations")
	})

	t.Run("rejects an invalid code", func(t *testing.T) {
		// Execute
		_, err := New("EURO")

		// Check
		assert.Error(t, err, "rejects non ISO-4217 code")
	})
}

func TestCurrency_Equal(t *testing.T) {
	t.Run("compares by code", func(t *testing.T) {
		// Prepare
		eur, err := New("EUR")
		assert.NoError(t, err, "creates currency")
		sameEur, err := New("EUR")
		assert.NoError(t, err, "creates currency")
		usd, err := New("USD")
		assert.NoError(t, err, "creates currency")

		// Execute and Check
		assert.True(t, eur.Equal(sameEur), "same code is equal")
		assert.False(t, eur.Equal(usd), "different code is not equal")
		assert.False(t, eur.Equal(nil), "nil is not equal")
	})
}

func TestCurrency_Denominations(t *testing.T) {
	t.Run("adds and removes denominations", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		// Execute
		for _, d := range []float64{0.5, 2, 1, 0.1} {
			err = c.AddDenomination(d)
			assert.NoError(t, err, "adds denomination")
		}
		err = c.DelDenomination(1)

		// Check
		assert.NoError(t, err, "removes denomination")
		assert.Equal(t, 3, c.NumDenominations(), "correct count")
		assert.True(t, c.HasDenominations(), "has denominations")
	})

	t.Run("rejects a duplicate denomination", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		err = c.AddDenomination(0.5)
		assert.NoError(t, err, "adds denomination")

		// Execute
		err = c.AddDenomination(0.5)

		// Check
		assert.Error(t, err, "rejects duplicate")
		assert.Equal(t, 1, c.NumDenominations(), "count unchanged")
	})

	t.Run("rejects a non positive denomination", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		// Execute and Check
		assert.Error(t, c.AddDenomination(0), "rejects zero")
		assert.Error(t, c.AddDenomination(-2), "rejects negative")
		assert.Error(t, c.DelDenomination(-2), "rejects negative removal")
	})

	t.Run("removing an absent denomination fails", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		// Execute
		err = c.DelDenomination(5)

		// Check
		assert.Error(t, err, "rejects absent denomination")
	})

	t.Run("navigates denominations in order", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		for _, d := range []float64{0.1, 0.5, 1, 2, 5} {
			err = c.AddDenomination(d)
			assert.NoError(t, err, "adds denomination")
		}

		// Execute and Check
		min, err := c.MinDenomination()
		assert.NoError(t, err, "finds minimum")
		assert.Equal(t, 0.1, min, "correct minimum")

		max, err := c.MaxDenomination()
		assert.NoError(t, err, "finds maximum")
		assert.Equal(t, 5.0, max, "correct maximum")

		aboveHalf, err := c.MinDenomination(0.5)
		assert.NoError(t, err, "finds minimum above bound")
		assert.Equal(t, 1.0, aboveHalf, "correct minimum above bound")

		belowTwo, err := c.MaxDenomination(2)
		assert.NoError(t, err, "finds maximum below bound")
		assert.Equal(t, 1.0, belowTwo, "correct maximum below bound")

		_, err = c.MinDenomination(5)
		assert.Error(t, err, "no denomination above the largest")

		_, err = c.MaxDenomination(0.1)
		assert.Error(t, err, "no denomination below the smallest")
	})

	t.Run("steps to next and previous denominations", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		for _, d := range []float64{0.5, 1, 2} {
			err = c.AddDenomination(d)
			assert.NoError(t, err, "adds denomination")
		}

		// Execute and Check
		next, ok, err := c.NextDenomination(1)
		assert.NoError(t, err, "steps forward")
		assert.True(t, ok, "next exists")
		assert.Equal(t, 2.0, next, "correct next")

		_, ok, err = c.NextDenomination(2)
		assert.NoError(t, err, "steps forward from the largest")
		assert.False(t, ok, "no next beyond the largest")

		prev, ok, err := c.PrevDenomination(1)
		assert.NoError(t, err, "steps backward")
		assert.True(t, ok, "previous exists")
		assert.Equal(t, 0.5, prev, "correct previous")

		_, _, err = c.NextDenomination(7)
		assert.Error(t, err, "rejects a value that is not a denomination")
	})

	t.Run("iterates ascending and descending", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		for _, d := range []float64{1, 0.5, 2} {
			err = c.AddDenomination(d)
			assert.NoError(t, err, "adds denomination")
		}

		// Execute
		var ascending, descending []float64
		c.IterDenominations(false, func(value float64) bool {
			ascending = append(ascending, value)
			return true
		})
		c.IterDenominations(true, func(value float64) bool {
			descending = append(descending, value)
			return true
		})

		// Check
		assert.Equal(t, []float64{0.5, 1, 2}, ascending, "correct ascending order")
		assert.Equal(t, []float64{2, 1, 0.5}, descending, "correct descending order")
	})

	t.Run("clears all denominations", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		err = c.AddDenomination(1)
		assert.NoError(t, err, "adds denomination")

		// Execute
		c.ClearDenominations()

		// Check
		assert.False(t, c.HasDenominations(), "no denominations left")
		assert.Equal(t, 0, c.NumDenominations(), "zero count")
	})
}

func TestCurrency_Changes(t *testing.T) {
	t.Run("adds and retrieves a change rate", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		// Execute
		err = c.AddChange("USD", 1.1)

		// Check
		assert.NoError(t, err, "adds change rate")

		change, err := c.GetChange("USD")
		assert.NoError(t, err, "retrieves change rate")
		assert.Equal(t, 1.1, change, "correct rate")
	})

	t.Run("rejects a duplicate change code", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		err = c.AddChange("USD", 1.1)
		assert.NoError(t, err, "adds change rate")

		// Execute
		err = c.AddChange("USD", 1.2)

		// Check
		assert.Error(t, err, "rejects duplicate code")

		change, err := c.GetChange("USD")
		assert.NoError(t, err, "retrieves change rate")
		assert.Equal(t, 1.1, change, "original rate kept")
	})

	t.Run("enforces a unit rate towards itself", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		// Execute and Check
		assert.Error(t, c.AddChange("EUR", 1.1), "rejects non unit self rate")
		assert.NoError(t, c.AddChange("EUR", 1), "accepts unit self rate")
	})

	t.Run("updates insert or overwrite", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		// Execute
		err = c.UpdateChange("USD", 1.1)
		assert.NoError(t, err, "inserts through update")
		err = c.UpdateChange("USD", 1.2)
		assert.NoError(t, err, "overwrites through update")

		// Check
		change, err := c.GetChange("USD")
		assert.NoError(t, err, "retrieves change rate")
		assert.Equal(t, 1.2, change, "last rate wins")
	})

	t.Run("removes a change rate", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		err = c.AddChange("USD", 1.1)
		assert.NoError(t, err, "adds change rate")

		// Execute
		err = c.RemoveChange("USD")

		// Check
		assert.NoError(t, err, "removes change rate")

		_, err = c.GetChange("USD")
		assert.ErrorAs(t, err, &hashmap.NotFound{}, "rate no longer present")
	})

	t.Run("rejects invalid codes and rates", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		// Execute and Check
		assert.Error(t, c.AddChange("XYZW", 1.1), "rejects invalid code")
		assert.Error(t, c.AddChange("USD", 0), "rejects zero rate")
		assert.Error(t, c.AddChange("USD", -1), "rejects negative rate")
		assert.Error(t, c.RemoveChange("XYZW"), "rejects invalid code on removal")
	})
}

func TestCurrency_Copy(t *testing.T) {
	t.Run("copy shares internals", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		err = c.AddDenomination(1)
		assert.NoError(t, err, "adds denomination")

		// Execute
		copied := c.Copy()

		err = copied.AddDenomination(2)
		assert.NoError(t, err, "adds denomination through copy")

		// Check
		assert.True(t, c.Equal(copied), "same currency")
		assert.Equal(t, 2, c.NumDenominations(), "mutation visible through the original")
	})

	t.Run("deep copy is equivalent but independent", func(t *testing.T) {
		// Prepare
		c, err := New("EUR")
		assert.NoError(t, err, "creates currency")

		err = c.AddDenomination(1)
		assert.NoError(t, err, "adds denomination")
		err = c.AddChange("USD", 1.1)
		assert.NoError(t, err, "adds change rate")

		// Execute
		deep := c.DeepCopy()

		err = deep.AddDenomination(2)
		assert.NoError(t, err, "adds denomination through deep copy")
		err = deep.UpdateChange("USD", 1.2)
		assert.NoError(t, err, "updates change rate through deep copy")

		// Check
		assert.True(t, c.Equal(deep), "same currency")
		assert.Equal(t, 1, c.NumDenominations(), "original denominations unaffected")

		change, err := c.GetChange("USD")
		assert.NoError(t, err, "retrieves original change rate")
		assert.Equal(t, 1.1, change, "original rate unaffected")

		deepChange, err := deep.GetChange("USD")
		assert.NoError(t, err, "retrieves deep copy change rate")
		assert.Equal(t, 1.2, deepChange, "deep copy rate updated")
	})
}
