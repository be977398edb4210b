package vecframe

import (
	"github.com/hupe1980/vecframe/value"
)

// Comparator returns a negative number when a orders before b, zero when
// they are equal and a positive number otherwise.
type Comparator func(a, b any) int

type sortOptions struct {
	ascending bool
	cmp       Comparator
}

// SortOption configures Sort.
type SortOption func(*sortOptions)

// Ascending sets the sort direction. The default is ascending.
func Ascending(ascending bool) SortOption {
	return func(o *sortOptions) {
		o.ascending = ascending
	}
}

// Descending sorts from largest to smallest.
func Descending() SortOption {
	return Ascending(false)
}

// WithComparator replaces the default total order of value.Compare.
func WithComparator(cmp Comparator) SortOption {
	return func(o *sortOptions) {
		if cmp != nil {
			o.cmp = cmp
		}
	}
}

// Sort returns a new Vector with values and labels co-permuted into order.
//
// Missing values sort to the end in both directions. The sort is a quicksort
// and is not stable.
func (v *Vector) Sort(opts ...SortOption) *Vector {
	o := &sortOptions{ascending: true, cmp: value.Compare}
	for _, fn := range opts {
		fn(o)
	}

	values := v.store.Values()
	perm := make([]int, len(values))

	// Present values first, then missing values in their original order.
	n := 0
	for i, x := range values {
		if !value.IsMissing(x) {
			perm[n] = i
			n++
		}
	}
	tail := n
	for i, x := range values {
		if value.IsMissing(x) {
			perm[tail] = i
			tail++
		}
	}
	sorted := make([]any, len(values))
	for i, p := range perm {
		sorted[i] = values[p]
	}

	s := &quickSorter{values: sorted, perm: perm, opts: o}
	s.sort(0, n-1)

	idx, _ := v.index.Take(perm)
	return v.derive(sorted, idx)
}

type quickSorter struct {
	values []any
	perm   []int
	opts   *sortOptions
}

// sort orders values[lo..hi]. It recurses into the smaller partition and
// loops on the larger one, bounding the stack depth.
func (s *quickSorter) sort(lo, hi int) {
	for lo < hi {
		leftHi, rightLo := s.partition(lo, hi)
		if leftHi-lo < hi-rightLo {
			s.sort(lo, leftHi)
			lo = rightLo
		} else {
			s.sort(rightLo, hi)
			hi = leftHi
		}
	}
}

// partition splits values[lo..hi] around the middle element. It returns the
// upper bound of the left part and the lower bound of the right part.
func (s *quickSorter) partition(lo, hi int) (int, int) {
	pivot := s.values[(lo+hi)/2]
	asc := s.opts.ascending
	i, j := lo, hi

	for i <= hi && s.keep(s.values[i], pivot, asc) {
		i++
	}
	for j >= lo && s.keep(s.values[j], pivot, !asc) {
		j--
	}
	for i < j-1 {
		s.swap(i, j)
		i++
		j--
		for i <= hi && s.keep(s.values[i], pivot, asc) {
			i++
		}
		for j >= lo && s.keep(s.values[j], pivot, !asc) {
			j--
		}
	}
	if i <= j {
		if i < j {
			s.swap(i, j)
		}
		i++
		j--
	}

	// An inconsistent comparator must still shrink the range.
	if j >= hi {
		j = hi - 1
	}
	if i <= lo {
		i = lo + 1
	}
	return j, i
}

// keep reports whether a stays on its side of pivot under the given
// direction. Comparisons involving a missing value never advance a cursor.
func (s *quickSorter) keep(a, pivot any, ascending bool) bool {
	if value.IsMissing(a) || value.IsMissing(pivot) {
		return false
	}
	c := s.opts.cmp(a, pivot)
	if ascending {
		return c < 0
	}
	return c > 0
}

func (s *quickSorter) swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
}
