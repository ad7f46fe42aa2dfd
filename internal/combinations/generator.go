package combinations

// Generator interface is designed to materialize every m-element subset of a set at once, in the same lexicographic order the Enumerator produces.
// Memory intensive (all C(n,m) subsets are held simultaneously), but allows repeated random access without recomputation.
type Generator[T any] interface {
	// Generates all m-element subsets. Fails with ErrSubsetTooLarge if m exceeds the set size and with ErrOverflow if C(n,m) cannot be represented in a uint64
	Generate(m uint64) error
	// Returns the number of generated subsets
	Size() uint64
	// Returns the i-th generated subset
	At(i uint64) []T
	// Returns all generated subsets in lexicographic order
	Combinations() [][]T
}

func NewGenerator[T any](set []T) Generator[T] {
	return &generatorImplementation[T]{
		set:     set,
		counter: NewCounter(),
	}
}
