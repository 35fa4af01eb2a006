package dna

import (
	"bufio"
	"errors"
	"io"
)

// Builder accumulates bases into full leaves before joining them into the
// tree. The zero value is ready to use.
type Builder struct {
	root *node
	buf  []Base
}

func (b *Builder) flush() {
	if len(b.buf) == 0 {
		return
	}
	b.root = join(b.root, newLeaf(b.buf))
	b.buf = nil
}

func (b *Builder) Append(base Base) {
	if b.buf == nil {
		b.buf = make([]Base, 0, maxLeaf)
	}
	b.buf = append(b.buf, base)
	if len(b.buf) == maxLeaf {
		b.flush()
	}
}

func (b *Builder) Concat(d DNA) {
	b.flush()
	b.root = join(b.root, d.root)
}

func (b *Builder) Len() int {
	return size(b.root) + len(b.buf)
}

func (b *Builder) DNA() DNA {
	b.flush()
	return DNA{
		root: b.root,
	}
}

// Read ingests DNA text, dropping every byte that is not a base.
func Read(r io.Reader) (DNA, error) {
	var b Builder
	br := bufio.NewReader(r)
	buf := make([]byte, 64*1024)
	for {
		n, err := br.Read(buf)
		for _, c := range buf[:n] {
			if base, ok := ParseBase(rune(c)); ok {
				b.Append(base)
			}
		}
		if errors.Is(err, io.EOF) {
			return b.DNA(), nil
		}
		if err != nil {
			return DNA{}, err
		}
	}
}
