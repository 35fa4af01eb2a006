package rnas

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/endo/dna"
)

func feed(chunks ...string) *Channel {
	c := NewChannel(0)
	for _, chunk := range chunks {
		c.Send(dna.FromString(chunk))
	}
	c.Close()
	return c
}

func TestDrainFirstError(t *testing.T) {
	c := feed("I", "C", "F")
	errFoo := errors.New("foo")
	n := 0
	err := Drain(c, func(chunk dna.DNA) error {
		n++
		return errFoo
	})
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if n != 1 {
		t.Fatalf("got %d", n)
	}
	if c.Len() != 0 {
		t.Fatal("should drain all")
	}
}

func TestTee(t *testing.T) {
	var a, b []string
	consume := Tee(
		func(chunk dna.DNA) error {
			a = append(a, chunk.String())
			return nil
		},
		nil,
		func(chunk dna.DNA) error {
			b = append(b, chunk.String())
			return nil
		},
	)
	if err := Drain(feed("ICFPICF", "PPP"), consume); err != nil {
		t.Fatal(err)
	}
	if strings.Join(a, ",") != "ICFPICF,PPP" || strings.Join(b, ",") != "ICFPICF,PPP" {
		t.Fatalf("got %v %v", a, b)
	}
}

func TestPrinter(t *testing.T) {
	buf := new(bytes.Buffer)
	p := NewPrinter(buf, false)
	if err := Drain(feed("PIPIIIC", "", "CF"), p.Consume); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "PIPIIIC\n\nCF\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrinterColored(t *testing.T) {
	buf := new(bytes.Buffer)
	p := NewPrinter(buf, true)
	if err := p.Consume(dna.FromString("IC")); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "\x1b[31mI") || !strings.Contains(got, "\x1b[32mC") {
		t.Fatalf("got %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("got %q", got)
	}
}

func TestDigest(t *testing.T) {
	sum := func(chunks ...string) string {
		d := NewDigest()
		if err := Drain(feed(chunks...), d.Consume); err != nil {
			t.Fatal(err)
		}
		return d.Sum()
	}
	a := sum("PIPIIIC", "PIPIIIP")
	if a != sum("PIPIIIC", "PIPIIIP") {
		t.Fatal("should be stable")
	}
	if a == sum("PIPIIIP", "PIPIIIC") {
		t.Fatal("should depend on order")
	}
	if a == sum("PIPIIICPIPIIIP") {
		t.Fatal("should depend on chunk boundaries")
	}
	if len(a) != 64 {
		t.Fatalf("got %s", a)
	}
}

func TestRecorder(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRecorder(buf)
	if err := Drain(feed("PIPIIIC", "CFP", ""), r.Consume); err != nil {
		t.Fatal(err)
	}
	records, err := ReadRecords(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %v", records)
	}
	for i, expected := range []string{"PIPIIIC", "CFP", ""} {
		if records[i].Seq != i || records[i].Bases != expected {
			t.Fatalf("got %+v", records[i])
		}
	}
}

func TestReadRecordsTruncated(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRecorder(buf)
	if err := r.Consume(dna.FromString("ICFP")); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if _, err := ReadRecords(bytes.NewReader(data[:len(data)-1])); err == nil {
		t.Fatal("should fail")
	}
}
