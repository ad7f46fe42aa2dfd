package combinations

// Lexor interface is designed to give random access to the m-element subsets of a set by their index in the lexicographic order, without generating the preceding subsets.
// The subset at index 0 is drawn from positions {0,...,m-1}; the subset at index C(n,m)-1 from positions {n-m,...,n-1}.
type Lexor[T any] interface {
	// Sets the subset size for subsequent Get calls
	SetM(m uint64)
	// Returns the i-th m-element subset, or nil if i is out of range. Counting failures (overflow, m > n) are reported as errors
	Get(i uint64) ([]T, error)
	// Same as Get, but sets m for subsequent calls as a side effect
	GetWithSize(i, m uint64) ([]T, error)
}

func NewLexor[T any](set []T, m uint64) Lexor[T] {
	return &lexorImplementation[T]{
		set:     set,
		n:       uint64(len(set)),
		m:       m,
		counter: NewCounter(),
	}
}
