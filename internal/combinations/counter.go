package combinations

// Counter interface is designed to count the m-element subsets of an n-element set without computing factorials
type Counter interface {
	// Returns the number of m-element subsets of an n-element set. Fails with ErrSubsetTooLarge if m > n and with ErrOverflow if the count cannot be represented in a uint64
	Count(n, m uint64) (uint64, error)
}

func NewCounter() Counter {
	return &memoizedCounter{
		counts: make(map[countKey]uint64, 16),
	}
}
