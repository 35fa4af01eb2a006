package dna

// maxLeaf bounds the number of bases a leaf holds. Joins merge adjacent small
// leaves up to this size so that front and back edits stay cheap.
const maxLeaf = 256

// node is an immutable rope node. Leaves carry bases; branches carry exactly
// two non-nil children. Nodes are shared between sequences and never modified
// after construction.
type node struct {
	left, right *node
	bases       []Base
	length      int
	height      int
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

func size(n *node) int {
	if n == nil {
		return 0
	}
	return n.length
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func newLeaf(bases []Base) *node {
	if len(bases) == 0 {
		return nil
	}
	return &node{
		bases:  bases,
		length: len(bases),
		height: 1,
	}
}

func branch(l, r *node) *node {
	return &node{
		left:   l,
		right:  r,
		length: l.length + r.length,
		height: max(l.height, r.height) + 1,
	}
}

// balance builds a branch from two non-nil subtrees whose heights differ by at
// most two, rotating once or twice when they differ by two.
func balance(l, r *node) *node {
	hl, hr := l.height, r.height
	switch {
	case hl > hr+1:
		if height(l.left) >= height(l.right) {
			return branch(l.left, branch(l.right, r))
		}
		return branch(
			branch(l.left, l.right.left),
			branch(l.right.right, r),
		)
	case hr > hl+1:
		if height(r.right) >= height(r.left) {
			return branch(branch(l, r.left), r.right)
		}
		return branch(
			branch(l, r.left.left),
			branch(r.left.right, r.right),
		)
	}
	return branch(l, r)
}

func join(l, r *node) *node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.isLeaf() && r.isLeaf() && l.length+r.length <= maxLeaf {
		bases := make([]Base, 0, l.length+r.length)
		bases = append(bases, l.bases...)
		bases = append(bases, r.bases...)
		return newLeaf(bases)
	}
	switch {
	case l.height > r.height+1:
		return balance(l.left, join(l.right, r))
	case r.height > l.height+1:
		return balance(join(l, r.left), r.right)
	}
	return branch(l, r)
}

// split returns the first i bases and the rest.
func split(n *node, i int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if i <= 0 {
		return nil, n
	}
	if i >= n.length {
		return n, nil
	}
	if n.isLeaf() {
		return newLeaf(n.bases[:i:i]), newLeaf(n.bases[i:])
	}
	switch ll := n.left.length; {
	case i < ll:
		a, b := split(n.left, i)
		return a, join(b, n.right)
	case i == ll:
		return n.left, n.right
	default:
		a, b := split(n.right, i-ll)
		return join(n.left, a), b
	}
}

// build makes a balanced tree over bases, which it takes ownership of.
func build(bases []Base) *node {
	if len(bases) <= maxLeaf {
		return newLeaf(bases)
	}
	leaves := (len(bases) + maxLeaf - 1) / maxLeaf
	mid := (leaves + 1) / 2 * maxLeaf
	return branch(build(bases[:mid:mid]), build(bases[mid:]))
}

func at(n *node, i int) Base {
	for !n.isLeaf() {
		if i < n.left.length {
			n = n.left
		} else {
			i -= n.left.length
			n = n.right
		}
	}
	return n.bases[i]
}

// cursor walks the bases of a tree in order.
type cursor struct {
	pending []*node
	leaf    []Base
}

func (c *cursor) seek(root *node, i int) {
	c.pending = c.pending[:0]
	c.leaf = nil
	n := root
	if n == nil || i >= n.length {
		return
	}
	for !n.isLeaf() {
		if i < n.left.length {
			c.pending = append(c.pending, n.right)
			n = n.left
		} else {
			i -= n.left.length
			n = n.right
		}
	}
	c.leaf = n.bases[i:]
}

func (c *cursor) next() (Base, bool) {
	for len(c.leaf) == 0 {
		if len(c.pending) == 0 {
			return 0, false
		}
		n := c.pending[len(c.pending)-1]
		c.pending = c.pending[:len(c.pending)-1]
		for !n.isLeaf() {
			c.pending = append(c.pending, n.right)
			n = n.left
		}
		c.leaf = n.bases
	}
	b := c.leaf[0]
	c.leaf = c.leaf[1:]
	return b, true
}
