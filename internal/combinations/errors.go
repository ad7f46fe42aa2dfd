package combinations

import "errors"

var (
	// ErrOverflow is returned when a combination count exceeds the range of uint64
	ErrOverflow = errors.New("combination count overflowed")

	// ErrSubsetTooLarge is returned when the requested subset size m exceeds the set size n
	ErrSubsetTooLarge = errors.New("subset size exceeds set size")
)
