package domain

import (
	"fmt"
	"slices"
)

var ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrValidation)

// Move returns a copy of items with the element at from relocated to to.
// The input slice is never modified.
func Move[T any](items []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, fmt.Errorf("%w: move %d -> %d over %d items", ErrIndexOutOfRange, from, to, len(items))
	}

	out := slices.Clone(items)
	if from == to {
		return out, nil
	}

	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item), nil
}
