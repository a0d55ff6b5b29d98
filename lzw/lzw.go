// Package lzw decodes the variable-width LZW symbol streams used by
// the GIF image format.
//
// Codes are packed least-significant-bit first across byte
// boundaries. The code width starts at litWidth+1 bits and grows with
// the dictionary up to 12 bits; once the dictionary holds 1<<12
// entries it is frozen until the stream issues a clear code. The
// caller supplies the concatenated payload of the image's data
// sub-blocks with the framing already stripped.
package lzw

import (
	"errors"
	"fmt"

	"github.com/ncassetta/animimage/vector"
)

var (
	// ErrMalformed is reported for structural violations: a wrong
	// code at a mandated position, an invalid code value, or a
	// literal width outside 2..8.
	ErrMalformed = errors.New("lzw: malformed stream")

	// ErrTruncated is reported when the input runs out before an end
	// code is seen.
	ErrTruncated = errors.New("lzw: truncated stream")
)

const maxWidth = 12

// status tracks the decode phase.
type status int

const (
	mustClear status = iota // nothing read yet, a clear code is mandatory
	first                   // a clear was just seen, only a literal may follow
	normal                  // dictionary is growing
	deferred                // dictionary is full, lookups only
)

type decoder struct {
	src    []byte
	ind    int
	offset uint // bit offset into src[ind], always < 8

	litWidth uint
	width    uint
	mask     uint32

	clear uint32
	end   uint32

	// Entry arena. Only entries[:live] are part of the table; a reset
	// shrinks live back to clear+2 and later growth reuses the
	// allocations already behind it.
	entries []*vector.Vector[uint16]
	live    int

	prev *vector.Vector[uint16] // expansion of the previous code
	out  *vector.Vector[uint16]

	flag status
}

// Decode expands a packed LZW code stream into its symbol sequence.
// litWidth is the number of bits needed for a literal symbol,
// typically the GIF "LZW minimum code size" byte, and must be in
// 2..8. The input buffer is never modified.
func Decode(litWidth uint, data []byte) ([]uint16, error) {
	if litWidth < 2 || litWidth > 8 {
		return nil, fmt.Errorf("%w: literal width %d out of range", ErrMalformed, litWidth)
	}

	d := newDecoder(litWidth, data)
	defer d.release()
	return d.run()
}

func newDecoder(litWidth uint, data []byte) *decoder {
	clear := uint32(1) << litWidth

	d := &decoder{
		src:      data,
		litWidth: litWidth,
		width:    litWidth + 1,
		mask:     1<<(litWidth+1) - 1,
		clear:    clear,
		end:      clear + 1,
		prev:     vector.New[uint16](0),
		out:      vector.New[uint16](0),
		flag:     mustClear,
	}

	// Literal entries, plus empty placeholders for the two sentinels
	// so that table indices line up with code values.
	d.entries = make([]*vector.Vector[uint16], 0, int(clear)+2)
	for i := uint32(0); i < clear; i++ {
		e := vector.New[uint16](0)
		e.Append([]uint16{uint16(i)})
		d.entries = append(d.entries, e)
	}
	d.entries = append(d.entries, vector.New[uint16](0), vector.New[uint16](0))
	d.live = int(clear) + 2

	return d
}

func (d *decoder) release() {
	for _, e := range d.entries {
		e.Release()
	}
	d.entries = nil
	d.prev.Release()
	d.out.Release()
}

// readCode pulls the next width-bit code from the cursor position.
// The accumulator fill is bounds-checked so a stream ending mid-code
// reports ErrTruncated instead of reading past the buffer.
func (d *decoder) readCode() (uint32, error) {
	if (len(d.src)-d.ind)*8-int(d.offset) < int(d.width) {
		return 0, ErrTruncated
	}

	var acc uint32
	for i, shift := d.ind, uint(0); i < len(d.src) && shift < d.offset+d.width; i, shift = i+1, shift+8 {
		acc |= uint32(d.src[i]) << shift
	}
	code := (acc >> d.offset) & d.mask

	d.offset += d.width
	d.ind += int(d.offset >> 3)
	d.offset &= 7
	return code, nil
}

func (d *decoder) run() ([]uint16, error) {
	for {
		code, err := d.readCode()
		if err != nil {
			return nil, err
		}

		switch d.flag {
		case mustClear:
			if code != d.clear {
				return nil, fmt.Errorf("%w: expected initial clear code, got %d", ErrMalformed, code)
			}
			d.flag = first

		case first:
			// An end code straight after a clear is an empty
			// continuation, not an error.
			if code == d.end {
				return d.out.Slice(), nil
			}
			if code >= d.clear {
				return nil, fmt.Errorf("%w: first code after clear must be a literal, got %d", ErrMalformed, code)
			}
			sym := []uint16{uint16(code)}
			if err := d.out.Append(sym); err != nil {
				return nil, err
			}
			d.prev.Clear()
			if err := d.prev.Append(sym); err != nil {
				return nil, err
			}
			d.flag = normal

		default:
			switch code {
			case d.end:
				return d.out.Slice(), nil
			case d.clear:
				d.live = int(d.clear) + 2
				d.width = d.litWidth + 1
				d.mask = 1<<d.width - 1
				d.flag = first
			default:
				if err := d.step(code); err != nil {
					return nil, err
				}
			}
		}
	}
}

// step handles one non-sentinel code in the normal and deferred
// phases.
func (d *decoder) step(code uint32) error {
	c := int(code)
	switch {
	case c < d.live:
		seq := d.entries[c].Slice()
		if err := d.out.Append(seq); err != nil {
			return err
		}
		if d.flag != deferred {
			// New entry: previous expansion plus the first symbol of
			// this one.
			if err := d.prev.Append(seq[:1]); err != nil {
				return err
			}
			if err := d.addEntry(d.prev); err != nil {
				return err
			}
		}
		if err := d.prev.CopyFrom(d.entries[c]); err != nil {
			return err
		}

	case c == d.live && d.flag != deferred:
		// The code for the entry about to be created: its expansion
		// is the previous one extended by its own first symbol.
		f := d.prev.At(0)
		if err := d.prev.Append([]uint16{f}); err != nil {
			return err
		}
		if err := d.out.Append(d.prev.Slice()); err != nil {
			return err
		}
		if err := d.addEntry(d.prev); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: invalid code %d", ErrMalformed, code)
	}

	return nil
}

// addEntry appends a copy of seq as the table's next entry and
// adjusts the code width when the table reaches the next power of
// two, freezing the dictionary at 1<<maxWidth entries.
func (d *decoder) addEntry(seq *vector.Vector[uint16]) error {
	var e *vector.Vector[uint16]
	if d.live < len(d.entries) {
		e = d.entries[d.live]
		e.Clear()
	} else {
		e = vector.New[uint16](seq.Len())
		e.Clear()
		d.entries = append(d.entries, e)
	}
	if err := e.CopyFrom(seq); err != nil {
		return err
	}
	d.live++

	if d.live == 1<<d.width {
		if d.width < maxWidth {
			d.width++
			d.mask = 1<<d.width - 1
		} else {
			d.flag = deferred
		}
	}
	return nil
}
