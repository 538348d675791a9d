package multiway

// NotFound - Custom error to inform that no entry with the given key is present.
// It is a normal, recoverable outcome of Search and Remove, not a failure.
type NotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "no entry found"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that an insert was rejected because an entry with
// the same key is already present
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key is already present
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "duplicate key"
	}
	return E.msg
}

// InvalidOrder - Custom error to inform that the tree was given an order it cannot be
// constructed with
type InvalidOrder struct {
	msg string
}

// Error - Used to notify that the given order is invalid
func (E InvalidOrder) Error() string {
	if E.msg == "" {
		return "invalid order"
	}
	return E.msg
}
