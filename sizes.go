package pairtable

import (
	"fmt"
	"slices"
)

// DefaultSizes is the default capacity schedule.
// Every entry is a prime, roughly doubling the previous one.
var DefaultSizes = []int{
	5, 13, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289,
	24593, 49157, 98317, 196613, 393241, 786433, 1572869,
}

// Checks that a schedule is non-empty, positive and strictly ascending.
func validateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidSizes)
	}

	for i, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("%w: size %d at index %d is not positive", ErrInvalidSizes, size, i)
		}

		if i > 0 && size <= sizes[i-1] {
			return fmt.Errorf("%w: size %d at index %d is not greater than %d", ErrInvalidSizes, size, i, sizes[i-1])
		}
	}

	return nil
}

func cloneSizes(sizes []int) []int {
	return slices.Clone(sizes)
}
