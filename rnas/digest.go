package rnas

import (
	"encoding/hex"

	"github.com/reusee/endo/dna"
	"github.com/zeebo/blake3"
)

// Digest hashes the chunk stream. Two runs emitting the same chunks in the
// same order have the same sum.
type Digest struct {
	h      *blake3.Hasher
	chunks int
}

func NewDigest() *Digest {
	return &Digest{
		h: blake3.New(),
	}
}

func (d *Digest) Consume(chunk dna.DNA) error {
	d.chunks++
	if _, err := d.h.WriteString(chunk.String()); err != nil {
		return err
	}
	_, err := d.h.WriteString("\n")
	return err
}

func (d *Digest) Chunks() int {
	return d.chunks
}

func (d *Digest) Sum() string {
	return hex.EncodeToString(d.h.Sum(nil))
}
