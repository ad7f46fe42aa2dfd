package combinations

type positionState uint8

const (
	// Position not yet tried on the current branch
	stateUnvisited positionState = iota
	// Element at the position is part of the running prefix
	stateIncluded
	// Both the include and the exclude branch have been explored
	stateExhausted
)

// stackEnumerator simulates a resumable depth-first traversal over include/exclude
// decisions with an explicit index stack and a per-position state tag. Suspension
// happens by plain return once a subset is complete; the stacks survive between
// calls, so Next picks the traversal up exactly where the previous call left it.
type stackEnumerator[T any] struct {
	set      []T
	m        uint64
	current  []T
	idxStack []uint64
	states   []positionState
}

func (enumerator *stackEnumerator[T]) First(m uint64) []T {
	if m > uint64(len(enumerator.set)) {
		enumerator.idxStack = enumerator.idxStack[:0]
		return nil
	}

	enumerator.m = m
	enumerator.current = enumerator.current[:0]
	enumerator.idxStack = append(enumerator.idxStack[:0], 0)
	clear(enumerator.states)

	if m == 0 {
		// The empty subset is the single 0-element combination
		enumerator.idxStack = enumerator.idxStack[:0]
		return []T{}
	}
	return enumerator.Next()
}

func (enumerator *stackEnumerator[T]) Next() []T {
	for len(enumerator.idxStack) > 0 {
		curIdx := enumerator.idxStack[len(enumerator.idxStack)-1]

		switch enumerator.states[curIdx] {
		case stateUnvisited:
			if uint64(len(enumerator.current)) < enumerator.m {
				enumerator.current = append(enumerator.current, enumerator.set[curIdx])
				enumerator.idxStack = append(enumerator.idxStack, curIdx+1)
				enumerator.states[curIdx] = stateIncluded
			} else {
				// Prefix is complete: yield it and resume from here on the next call
				enumerator.idxStack = enumerator.idxStack[:len(enumerator.idxStack)-1]
				combination := make([]T, len(enumerator.current))
				copy(combination, enumerator.current)
				return combination
			}

		case stateIncluded:
			// Backtrack: drop the element and explore the exclude branch if enough positions remain to complete an m-element prefix
			enumerator.current = enumerator.current[:len(enumerator.current)-1]
			if curIdx+(enumerator.m-uint64(len(enumerator.current))) < uint64(len(enumerator.set)) {
				enumerator.idxStack = append(enumerator.idxStack, curIdx+1)
				enumerator.states[curIdx] = stateExhausted
			} else {
				enumerator.idxStack = enumerator.idxStack[:len(enumerator.idxStack)-1]
				enumerator.states[curIdx] = stateUnvisited
			}

		case stateExhausted:
			enumerator.idxStack = enumerator.idxStack[:len(enumerator.idxStack)-1]
			enumerator.states[curIdx] = stateUnvisited
		}
	}

	return nil
}
