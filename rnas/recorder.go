package rnas

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/endo/dna"
)

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em
}

type Record struct {
	Seq   int    `cbor:"1,keyasint"`
	Bases string `cbor:"2,keyasint"`
}

// Recorder writes each chunk as a CBOR record.
type Recorder struct {
	enc *cbor.Encoder
	seq int
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{
		enc: encMode.NewEncoder(w),
	}
}

func (r *Recorder) Consume(chunk dna.DNA) error {
	if err := r.enc.Encode(Record{
		Seq:   r.seq,
		Bases: chunk.String(),
	}); err != nil {
		return fmt.Errorf("record chunk %d: %w", r.seq, err)
	}
	r.seq++
	return nil
}

// ReadRecords decodes records written by a Recorder.
func ReadRecords(r io.Reader) ([]Record, error) {
	dec := cbor.NewDecoder(r)
	var ret []Record
	for {
		var record Record
		if err := dec.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				return ret, nil
			}
			return nil, err
		}
		ret = append(ret, record)
	}
}
