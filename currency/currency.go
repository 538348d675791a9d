package currency

import (
	"fmt"

	"github.com/google/btree"
	iso "golang.org/x/text/currency"

	"github.com/DAA2020-team/midterm-project/hashmap"
)

// changesCapacity - Initial capacity of the change rates hash map
const changesCapacity int64 = 17

// denominationsDegree - Degree of the btree holding the ordered denominations
const denominationsDegree int = 4

// Currency - Represents one currency: an ISO-4217 code, the ordered set of denominations
// (coins and notes) it is minted in, and the change rates towards other currencies.
// Denominations are held in a btree to support ordered navigation, change rates in a double
// hashing hash map keyed by currency code.
type Currency struct {
	code          string
	denominations *btree.BTreeG[float64]
	changes       *hashmap.Map[float64]
}

// New - Returns a pointer to a new Currency instance with no denominations and no change rates.
//   - code is the ISO-4217 code of the currency, e.g. "EUR"
//
// It returns:
//   - c which is a pointer to the created instance
//   - err which is a standard Go type of error if code is not a valid ISO-4217 code
func New(code string) (c *Currency, err error) {
	if err = validateCode(code); err != nil {
		return
	}

	changes, err := hashmap.New[float64](changesCapacity)
	if err != nil {
		err = fmt.Errorf("error while creating change rates map: %s", err)
		return
	}

	c = &Currency{
		code:          code,
		denominations: btree.NewG[float64](denominationsDegree, func(a, b float64) bool { return a < b }),
		changes:       changes,
	}

	return
}

// validateCode - Returns an error if code is not a valid ISO-4217 currency code
func validateCode(code string) (err error) {
	if _, err = iso.ParseISO(code); err != nil {
		err = fmt.Errorf("%q is not a valid ISO-4217 code: %s", code, err)
	}

	return
}

// validateValue - Returns an error if a denomination or change rate is not a positive number
func validateValue(value float64) (err error) {
	if value <= 0 {
		err = fmt.Errorf("value must be greater than 0, got %v", value)
	}

	return
}

// Code - Returns the ISO-4217 code of the currency
func (C *Currency) Code() string {
	return C.code
}

// Equal - Returns true if other denotes the same currency, compared by code
func (C *Currency) Equal(other *Currency) bool {
	return other != nil && C.code == other.code
}

// ---------- Denominations ----------

// AddDenomination - Adds a denomination to the currency.
//   - value is the denomination to add, it must be a positive number
//
// It returns:
//   - err is a standard error if value is not positive or already present
func (C *Currency) AddDenomination(value float64) (err error) {
	if err = validateValue(value); err != nil {
		return
	}

	if C.denominations.Has(value) {
		err = fmt.Errorf("denomination %v is already present", value)
		return
	}

	C.denominations.ReplaceOrInsert(value)

	return
}

// DelDenomination - Removes a denomination from the currency.
//   - value is the denomination to remove
//
// It returns:
//   - err is a standard error if value is not positive or not present
func (C *Currency) DelDenomination(value float64) (err error) {
	if err = validateValue(value); err != nil {
		return
	}

	if _, removed := C.denominations.Delete(value); !removed {
		err = fmt.Errorf("%v is not a denomination", value)
	}

	return
}

// HasDenominations - Returns true if at least one denomination is present
func (C *Currency) HasDenominations() bool {
	return C.denominations.Len() > 0
}

// NumDenominations - Returns the number of denominations present
func (C *Currency) NumDenominations() int {
	return C.denominations.Len()
}

// ClearDenominations - Removes all denominations
func (C *Currency) ClearDenominations() {
	C.denominations.Clear(false)
}

// MinDenomination - Returns the smallest denomination, or when above is given, the smallest
// denomination strictly greater than above.
//   - above is an optional open lower bound
//
// It returns:
//   - value is the found denomination
//   - err is a standard error if no such denomination exists
func (C *Currency) MinDenomination(above ...float64) (value float64, err error) {
	if C.denominations.Len() == 0 {
		err = fmt.Errorf("no denomination present")
		return
	}

	if len(above) == 0 {
		value, _ = C.denominations.Min()
		return
	}

	var found bool
	C.denominations.AscendGreaterOrEqual(above[0], func(d float64) bool {
		if d > above[0] {
			value = d
			found = true
			return false
		}
		return true
	})
	if !found {
		err = fmt.Errorf("no denomination greater than %v present", above[0])
	}

	return
}

// MaxDenomination - Returns the largest denomination, or when below is given, the largest
// denomination strictly smaller than below.
//   - below is an optional open upper bound
//
// It returns:
//   - value is the found denomination
//   - err is a standard error if no such denomination exists
func (C *Currency) MaxDenomination(below ...float64) (value float64, err error) {
	if C.denominations.Len() == 0 {
		err = fmt.Errorf("no denomination present")
		return
	}

	if len(below) == 0 {
		value, _ = C.denominations.Max()
		return
	}

	var found bool
	C.denominations.DescendLessOrEqual(below[0], func(d float64) bool {
		if d < below[0] {
			value = d
			found = true
			return false
		}
		return true
	})
	if !found {
		err = fmt.Errorf("no denomination smaller than %v present", below[0])
	}

	return
}

// NextDenomination - Returns the denomination that follows value in ascending order.
//   - value is the denomination to start from, it must itself be a denomination
//
// It returns:
//   - next is the following denomination, valid only when ok is true
//   - ok is false if value is the largest denomination
//   - err is a standard error if value is not a denomination
func (C *Currency) NextDenomination(value float64) (next float64, ok bool, err error) {
	if !C.denominations.Has(value) {
		err = fmt.Errorf("%v is not a denomination", value)
		return
	}

	next, nextErr := C.MinDenomination(value)
	ok = nextErr == nil

	return
}

// PrevDenomination - Returns the denomination that precedes value in ascending order.
//   - value is the denomination to start from, it must itself be a denomination
//
// It returns:
//   - prev is the preceding denomination, valid only when ok is true
//   - ok is false if value is the smallest denomination
//   - err is a standard error if value is not a denomination
func (C *Currency) PrevDenomination(value float64) (prev float64, ok bool, err error) {
	if !C.denominations.Has(value) {
		err = fmt.Errorf("%v is not a denomination", value)
		return
	}

	prev, prevErr := C.MaxDenomination(value)
	ok = prevErr == nil

	return
}

// IterDenominations - Calls f for every denomination until f returns false.
//   - reverse iterates from the largest to the smallest denomination instead of ascending
//   - f is the function called per denomination, returning false stops the iteration
func (C *Currency) IterDenominations(reverse bool, f func(value float64) bool) {
	if reverse {
		C.denominations.Descend(btree.ItemIteratorG[float64](f))
	} else {
		C.denominations.Ascend(btree.ItemIteratorG[float64](f))
	}
}

// ---------- Change rates ----------

// AddChange - Adds an entry to the change rates map, keyed by currency code.
//   - currencyCode is the ISO-4217 code of the other currency
//   - change is the change rate between this currency and the other one, it must be positive,
//     and exactly 1 when currencyCode denotes this very currency
//
// It returns:
//   - err is a standard error if the code or rate is invalid or the code is already present
func (C *Currency) AddChange(currencyCode string, change float64) (err error) {
	if currencyCode == C.code && change != 1 {
		err = fmt.Errorf("same currency code implies change equal to 1")
		return
	}
	if err = validateValue(change); err != nil {
		return
	}
	if err = validateCode(currencyCode); err != nil {
		return
	}

	if _, searchErr := C.changes.Search(currencyCode); searchErr == nil {
		err = fmt.Errorf("%s is already present", currencyCode)
		return
	}

	err = C.changes.Insert(currencyCode, change)

	return
}

// UpdateChange - Updates the change rate for currencyCode, inserting it if not yet present.
//   - currencyCode is the ISO-4217 code of the other currency
//   - change is the new change rate, it must be positive, and exactly 1 when currencyCode
//     denotes this very currency
//
// It returns:
//   - err is a standard error if the code or rate is invalid
func (C *Currency) UpdateChange(currencyCode string, change float64) (err error) {
	if currencyCode == C.code && change != 1 {
		err = fmt.Errorf("same currency code implies change equal to 1")
		return
	}
	if err = validateValue(change); err != nil {
		return
	}
	if err = validateCode(currencyCode); err != nil {
		return
	}

	err = C.changes.Insert(currencyCode, change)

	return
}

// RemoveChange - Removes the change rate for currencyCode.
//   - currencyCode is the ISO-4217 code of the other currency
//
// It returns:
//   - err is a standard error if the code is invalid, or of type hashmap.NotFound if no
//     change rate for it is present
func (C *Currency) RemoveChange(currencyCode string) (err error) {
	if err = validateCode(currencyCode); err != nil {
		return
	}

	err = C.changes.Delete(currencyCode)

	return
}

// GetChange - Returns the change rate for currencyCode.
//   - currencyCode is the ISO-4217 code of the other currency
//
// It returns:
//   - change is the change rate if present
//   - err is a standard error if the code is invalid, or of type hashmap.NotFound if no
//     change rate for it is present
func (C *Currency) GetChange(currencyCode string) (change float64, err error) {
	if err = validateCode(currencyCode); err != nil {
		return
	}

	change, err = C.changes.Search(currencyCode)

	return
}

// ---------- Copying ----------

// Copy - Returns a pointer to a new Currency sharing denominations and change rates with
// this one. Mutations through either instance are visible in both.
func (C *Currency) Copy() *Currency {
	return &Currency{
		code:          C.code,
		denominations: C.denominations,
		changes:       C.changes,
	}
}

// DeepCopy - Returns a pointer to a new Currency equivalent to, but independent of, this one.
// The change rates map is cloned including its collision counter, so the copy keeps behaving
// exactly as the original would.
func (C *Currency) DeepCopy() *Currency {
	return &Currency{
		code:          C.code,
		denominations: C.denominations.Clone(),
		changes:       C.changes.Clone(),
	}
}
