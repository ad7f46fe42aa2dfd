package combinations

type lexorImplementation[T any] struct {
	set     []T
	n       uint64
	m       uint64
	counter Counter
}

func (lexor *lexorImplementation[T]) SetM(m uint64) {
	lexor.m = m
}

func (lexor *lexorImplementation[T]) Get(i uint64) ([]T, error) {
	total, err := lexor.counter.Count(lexor.n, lexor.m)
	if err != nil {
		return nil, err
	}
	if i >= total {
		return nil, nil
	}

	result := make([]T, 0, lexor.m)
	if err := lexor.get(lexor.n, lexor.m, i, 0, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (lexor *lexorImplementation[T]) GetWithSize(i, m uint64) ([]T, error) {
	lexor.m = m
	return lexor.Get(i)
}

// Combinatorial-number-system descent: of the C(n,m) subsets still reachable,
// the first C(n-1,m-1) include the element at position nel and the rest exclude
// it, so comparing i against that count decides each position in turn. Every
// step shrinks n by one, giving random access in O(n) counter lookups.
func (lexor *lexorImplementation[T]) get(n, m, i, nel uint64, result *[]T) error {
	if m == 0 {
		return nil
	}

	elCnt, err := lexor.counter.Count(n-1, m-1)
	if err != nil {
		return err
	}

	if i < elCnt {
		*result = append(*result, lexor.set[nel])
		return lexor.get(n-1, m-1, i, nel+1, result)
	}
	return lexor.get(n-1, m, i-elCnt, nel+1, result)
}
