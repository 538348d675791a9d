package hashmap

// NotFound - Custom error to inform that no entry with the given key is present.
// It is a normal, recoverable outcome of Search and Delete, not a failure.
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

// InvalidCapacity - Custom error to inform that the map was given a capacity it cannot be
// constructed with
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that the given capacity is invalid
func (E InvalidCapacity) Error() string {
	if E.msg == "" {
		return "invalid capacity"
	}
	return E.msg
}
