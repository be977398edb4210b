// Package bitmap provides compressed position sets used to select rows of
// vectors and data frames.
package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Positions is a set of 0-based positions backed by a Roaring bitmap.
type Positions struct {
	rb *roaring.Bitmap
}

// New creates an empty position set.
func New() *Positions {
	return &Positions{rb: roaring.New()}
}

// Of creates a position set holding the given positions.
// Negative positions are ignored.
func Of(positions ...int) *Positions {
	p := New()
	for _, pos := range positions {
		p.Add(pos)
	}
	return p
}

// Add adds pos to the set. Negative positions are ignored.
func (p *Positions) Add(pos int) {
	if pos < 0 {
		return
	}
	p.rb.Add(uint32(pos))
}

// Remove removes pos from the set.
func (p *Positions) Remove(pos int) {
	if pos < 0 {
		return
	}
	p.rb.Remove(uint32(pos))
}

// Contains reports whether pos is in the set.
func (p *Positions) Contains(pos int) bool {
	if pos < 0 {
		return false
	}
	return p.rb.Contains(uint32(pos))
}

// IsEmpty returns true if the set is empty.
func (p *Positions) IsEmpty() bool {
	return p.rb.IsEmpty()
}

// Cardinality returns the number of positions in the set.
func (p *Positions) Cardinality() int {
	return int(p.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (p *Positions) Clone() *Positions {
	return &Positions{rb: p.rb.Clone()}
}

// And intersects p with other in place.
func (p *Positions) And(other *Positions) {
	p.rb.And(other.rb)
}

// Or unions other into p in place.
func (p *Positions) Or(other *Positions) {
	p.rb.Or(other.rb)
}

// AndNot removes the positions of other from p in place.
func (p *Positions) AndNot(other *Positions) {
	p.rb.AndNot(other.rb)
}

// Complement returns the positions in [0, n) that are not in p.
func (p *Positions) Complement(n int) *Positions {
	out := New()
	if n > 0 {
		out.rb.AddRange(0, uint64(n))
		out.rb.AndNot(p.rb)
	}
	return out
}

// All iterates over the positions in ascending order.
func (p *Positions) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := p.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the positions in ascending order.
func (p *Positions) ToSlice() []int {
	out := make([]int, 0, p.Cardinality())
	for pos := range p.All() {
		out = append(out, pos)
	}
	return out
}
