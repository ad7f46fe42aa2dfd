package combinations

// Enumerator interface is designed to produce the m-element subsets of a set one at a time, in lexicographic order over element positions, without holding more than one subset in memory.
// The first subset drawn from positions {0,...,n-1} is {0,...,m-1}; the last is {n-m,...,n-1}.
type Enumerator[T any] interface {
	// Starts (or restarts) the enumeration and returns the first m-element subset. If m is zero the empty subset is returned; if m exceeds the set size nil is returned
	First(m uint64) []T
	// Returns the next subset, or nil once the enumeration is exhausted
	Next() []T
}

func NewEnumerator[T any](set []T) Enumerator[T] {
	return &stackEnumerator[T]{
		set:    set,
		states: make([]positionState, len(set)+1),
	}
}
