package primes

// ExhaustedPrimeTable - Custom error to inform that the backing prime table holds no prime
// satisfying the request
type ExhaustedPrimeTable struct {
	msg string
}

// Error - Used to notify that the prime table is exhausted
func (E ExhaustedPrimeTable) Error() string {
	if E.msg == "" {
		return "prime table exhausted"
	}
	return E.msg
}
