// SPDX-License-Identifier: MIT

package extended

import (
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/extnum/numeric"
)

// Comparer orders Number keys for immutable.SortedMap.
type Comparer[T numeric.Signed[T]] struct{}

var _ immutable.Comparer[Int64] = Comparer[numeric.Int64]{}

// Compare implements immutable.Comparer.
func (Comparer[T]) Compare(a, b Number[T]) int { return a.Compare(b) }

// NonNegativeComparer orders NonNegative keys for immutable.SortedMap.
type NonNegativeComparer[T numeric.Unsigned[T]] struct{}

var _ immutable.Comparer[Uint64] = NonNegativeComparer[numeric.Uint64]{}

// Compare implements immutable.Comparer.
func (NonNegativeComparer[T]) Compare(a, b NonNegative[T]) int { return a.Compare(b) }

// NewSortedMap returns an empty persistent map keyed by extended numbers.
func NewSortedMap[T numeric.Signed[T], V any]() *immutable.SortedMap[Number[T], V] {
	return immutable.NewSortedMap[Number[T], V](Comparer[T]{})
}

// NewNonNegativeSortedMap is NewSortedMap for the single-bounded family.
func NewNonNegativeSortedMap[T numeric.Unsigned[T], V any]() *immutable.SortedMap[NonNegative[T], V] {
	return immutable.NewSortedMap[NonNegative[T], V](NonNegativeComparer[T]{})
}

// Sort orders s ascending under the total order; infinities go to the ends.
func Sort[T numeric.Signed[T]](s []Number[T]) {
	slices.SortStableFunc(s, func(a, b Number[T]) bool { return a.Less(b) })
}

// SortNonNegative orders s ascending, Infinity last.
func SortNonNegative[T numeric.Unsigned[T]](s []NonNegative[T]) {
	slices.SortStableFunc(s, func(a, b NonNegative[T]) bool { return a.Less(b) })
}
