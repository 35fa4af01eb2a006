package rnas

import (
	"errors"

	"github.com/reusee/endo/dna"
)

type Consumer func(chunk dna.DNA) error

// Tee passes every chunk to all consumers.
func Tee(consumers ...Consumer) Consumer {
	return func(chunk dna.DNA) error {
		var errs []error
		for _, consume := range consumers {
			if consume == nil {
				continue
			}
			if err := consume(chunk); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// Drain feeds every chunk of c to consume until end of stream. It keeps
// draining after consume fails so the producer never stalls, and returns the
// first error.
func Drain(c *Channel, consume Consumer) error {
	var first error
	for chunk := range c.All() {
		if first != nil || consume == nil {
			continue
		}
		first = consume(chunk)
	}
	return first
}
