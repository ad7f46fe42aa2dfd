package combinations

type generatorImplementation[T any] struct {
	set          []T
	m            uint64
	combinations [][]T
	counter      Counter
}

func (generator *generatorImplementation[T]) Generate(m uint64) error {
	total, err := generator.counter.Count(uint64(len(generator.set)), m)
	if err != nil {
		return err
	}

	generator.m = m
	generator.combinations = make([][]T, 0, total)
	current := make([]T, 0, m)
	generator.generateRec(0, &current)
	return nil
}

func (generator *generatorImplementation[T]) Size() uint64 {
	return uint64(len(generator.combinations))
}

func (generator *generatorImplementation[T]) At(i uint64) []T {
	return generator.combinations[i]
}

func (generator *generatorImplementation[T]) Combinations() [][]T {
	return generator.combinations
}

// Same include/exclude backtracking as the enumerator, expressed as plain
// recursion since no mid-traversal suspension is needed when every result
// is retained anyway.
func (generator *generatorImplementation[T]) generateRec(curIdx uint64, current *[]T) {
	if uint64(len(*current)) < generator.m {
		*current = append(*current, generator.set[curIdx])
		generator.generateRec(curIdx+1, current)
		*current = (*current)[:len(*current)-1]

		if curIdx+(generator.m-uint64(len(*current))) < uint64(len(generator.set)) {
			generator.generateRec(curIdx+1, current)
		}
	} else {
		combination := make([]T, generator.m)
		copy(combination, *current)
		generator.combinations = append(generator.combinations, combination)
	}
}
