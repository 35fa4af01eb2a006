package dna

import (
	"iter"
	"strings"
)

// DNA is a persistent sequence of bases. The zero value is empty. Copies are
// cheap and independent: methods with pointer receivers replace the receiver's
// tree and never touch nodes another copy may share.
type DNA struct {
	root *node
}

func New(bases ...Base) DNA {
	return DNA{
		root: build(append([]Base(nil), bases...)),
	}
}

// FromString reads bases from s, dropping every other character.
func FromString(s string) DNA {
	var b Builder
	for _, r := range s {
		if base, ok := ParseBase(r); ok {
			b.Append(base)
		}
	}
	return b.DNA()
}

func (d DNA) Len() int {
	return size(d.root)
}

func (d DNA) At(i int) (Base, bool) {
	if i < 0 || i >= d.Len() {
		return 0, false
	}
	return at(d.root, i), true
}

func (d DNA) Peek() (Base, bool) {
	return d.At(0)
}

func (d *DNA) Pop() (Base, bool) {
	b, ok := d.At(0)
	if !ok {
		return 0, false
	}
	_, d.root = split(d.root, 1)
	return b, true
}

// Drop removes up to n bases from the front.
func (d *DNA) Drop(n int) {
	if n <= 0 {
		return
	}
	_, d.root = split(d.root, n)
}

func (d *DNA) Prepend(b Base) {
	d.root = join(newLeaf([]Base{b}), d.root)
}

func (d *DNA) Append(b Base) {
	d.root = join(d.root, newLeaf([]Base{b}))
}

func (d *DNA) Concat(other DNA) {
	d.root = join(d.root, other.root)
}

func (d *DNA) Assign(other DNA) {
	d.root = other.root
}

// Subseq returns the bases in [start, end). Both bounds are clamped into
// range, so inverted or out-of-range intervals give an empty sequence.
func (d DNA) Subseq(start, end int) DNA {
	end = min(max(end, 0), d.Len())
	start = min(max(start, 0), end)
	head, _ := split(d.root, end)
	_, mid := split(head, start)
	return DNA{
		root: mid,
	}
}

// Find returns the index of the left-most occurrence of needle starting at or
// after from. An empty needle matches at from, clamped to the length.
func (d DNA) Find(needle DNA, from int) (int, bool) {
	length := d.Len()
	from = max(from, 0)
	pattern := needle.Bases()
	if len(pattern) == 0 {
		return min(from, length), true
	}
	var c cursor
	c.seek(d.root, from)
	start, k := from, 0
	for start+len(pattern) <= length {
		b, _ := c.next()
		if b == pattern[k] {
			k++
			if k == len(pattern) {
				return start, true
			}
			continue
		}
		start++
		if k > 0 {
			k = 0
			c.seek(d.root, start)
		}
	}
	return 0, false
}

func (d DNA) All() iter.Seq2[int, Base] {
	return func(yield func(int, Base) bool) {
		var c cursor
		c.seek(d.root, 0)
		for i := 0; ; i++ {
			b, ok := c.next()
			if !ok {
				return
			}
			if !yield(i, b) {
				return
			}
		}
	}
}

func (d DNA) Bases() []Base {
	ret := make([]Base, 0, d.Len())
	for _, b := range d.All() {
		ret = append(ret, b)
	}
	return ret
}

func (d DNA) Equal(other DNA) bool {
	if d.Len() != other.Len() {
		return false
	}
	if d.root == other.root {
		return true
	}
	var a, b cursor
	a.seek(d.root, 0)
	b.seek(other.root, 0)
	for {
		x, ok := a.next()
		if !ok {
			return true
		}
		y, _ := b.next()
		if x != y {
			return false
		}
	}
}

func (d DNA) String() string {
	var b strings.Builder
	b.Grow(d.Len())
	for _, base := range d.All() {
		b.WriteByte(base.Byte())
	}
	return b.String()
}
