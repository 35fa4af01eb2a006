package rnas

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/reusee/endo/dna"
)

var baseColors = [4]color.Attribute{
	dna.I: color.FgRed,
	dna.C: color.FgGreen,
	dna.F: color.FgYellow,
	dna.P: color.FgBlue,
}

// Printer writes one line per chunk.
type Printer struct {
	w      io.Writer
	colors [4]*color.Color
}

func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w: w,
	}
	if colored {
		for i, attr := range baseColors {
			c := color.New(attr)
			c.EnableColor()
			p.colors[i] = c
		}
	}
	return p
}

func (p *Printer) format(chunk dna.DNA) string {
	var b strings.Builder
	for _, base := range chunk.All() {
		if c := p.colors[base&3]; c != nil {
			b.WriteString(c.Sprint(base.String()))
		} else {
			b.WriteByte(base.Byte())
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func (p *Printer) Consume(chunk dna.DNA) error {
	_, err := io.WriteString(p.w, p.format(chunk))
	return err
}
