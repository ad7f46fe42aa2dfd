package combinations

type countKey struct {
	n uint64
	m uint64
}

type memoizedCounter struct {
	counts map[countKey]uint64
}

func (counter *memoizedCounter) Count(n, m uint64) (uint64, error) {
	if m > n {
		return 0, ErrSubsetTooLarge
	}
	return counter.countRec(n, m)
}

// Computation is done using the recursive formula C(n,m) = C(n-1,m) + C(n-1,m-1).
// Since C(n,m) == C(n,n-m), m is normalized to min(m, n-m) before every lookup to halve the cache footprint.
func (counter *memoizedCounter) countRec(n, m uint64) (uint64, error) {
	m = min(m, n-m)

	if m == 0 {
		return 1, nil
	} else if m == 1 {
		return n, nil
	}

	key := countKey{n: n, m: m}
	if count, ok := counter.counts[key]; ok {
		return count, nil
	}

	count0, err := counter.countRec(n-1, m)
	if err != nil {
		return 0, err
	}
	count1, err := counter.countRec(n-1, m-1)
	if err != nil {
		return 0, err
	}

	// Unsigned addition wrapped around iff the sum is smaller than the bitwise-OR of its addends
	count := count0 + count1
	if count < (count0 | count1) {
		return 0, ErrOverflow
	}

	counter.counts[key] = count
	return count, nil
}
