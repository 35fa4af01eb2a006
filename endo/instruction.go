package endo

import (
	"strconv"
	"strings"

	"github.com/reusee/endo/dna"
)

type PatternOp uint8

const (
	PatBase PatternOp = iota + 1
	PatSkip
	PatSearch
	PatOpen
	PatClose
)

type PatternItem struct {
	Op     PatternOp
	Base   dna.Base // PatBase
	N      int      // PatSkip
	Search dna.DNA  // PatSearch
}

type Pattern []PatternItem

func (p Pattern) String() string {
	var b strings.Builder
	for _, item := range p {
		switch item.Op {
		case PatBase:
			b.WriteByte(item.Base.Byte())
		case PatSkip:
			b.WriteString("!")
			b.WriteString(strconv.Itoa(item.N))
		case PatSearch:
			b.WriteString("?")
			b.WriteString(item.Search.String())
		case PatOpen:
			b.WriteString("(")
		case PatClose:
			b.WriteString(")")
		}
	}
	return b.String()
}

type TemplateOp uint8

const (
	TplBase TemplateOp = iota + 1
	TplRef
	TplLen
)

type TemplateItem struct {
	Op    TemplateOp
	Base  dna.Base // TplBase
	N     int      // TplRef, TplLen
	Level int      // TplRef
}

type Template []TemplateItem

func (t Template) String() string {
	var b strings.Builder
	for _, item := range t {
		switch item.Op {
		case TplBase:
			b.WriteByte(item.Base.Byte())
		case TplRef:
			b.WriteString(`\`)
			b.WriteString(strconv.Itoa(item.N))
			if item.Level > 0 {
				b.WriteString("(")
				b.WriteString(strconv.Itoa(item.Level))
				b.WriteString(")")
			}
		case TplLen:
			b.WriteString("|")
			b.WriteString(strconv.Itoa(item.N))
			b.WriteString("|")
		}
	}
	return b.String()
}
