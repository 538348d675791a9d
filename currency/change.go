package currency

import (
	"fmt"
	"math"
)

// DefaultDecimals - Number of decimal digits change amounts are rounded to
const DefaultDecimals int = 2

// round - Rounds v to the given number of decimal digits
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Change - Computes a decomposition of value into denominations of the given currency,
// greedily taking the largest denomination that still fits the remainder. With canonical
// denomination sets, such as the euro series, the greedy decomposition is also the one with
// the fewest coins.
//   - value is the amount to decompose, with at most DefaultDecimals decimal digits
//   - c is the currency whose denominations are used
//
// It returns:
//   - coins is the list of denominations used, in descending order
//   - count is the number of coins used, equal to len(coins)
//   - err is a standard error if value is negative or if the denominations cannot cover value
func Change(value float64, c *Currency) (coins []float64, count int, err error) {
	return ChangeWithDecimals(value, c, DefaultDecimals)
}

// ChangeWithDecimals - Same as Change but rounding amounts to the given number of
// decimal digits.
func ChangeWithDecimals(value float64, c *Currency, decimals int) (coins []float64, count int, err error) {
	remaining := round(value, decimals)
	if remaining < 0 {
		err = fmt.Errorf("value must not be negative, got %v", value)
		return
	}

	coins = make([]float64, 0)
	c.IterDenominations(true, func(d float64) bool {
		for remaining > 0 && round(remaining-d, decimals) >= 0 {
			remaining = round(remaining-d, decimals)
			coins = append(coins, round(d, decimals))
		}
		return remaining > 0
	})

	if remaining > 0 {
		coins = nil
		err = fmt.Errorf("no denomination of %s fits the remaining %v", c.code, remaining)
		return
	}

	count = len(coins)

	return
}
