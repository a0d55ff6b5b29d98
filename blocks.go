package animimage

import (
	"bufio"
	"io"
)

// ReadBlocks consumes GIF data sub-blocks from r up to and including
// the block terminator, returning the concatenated payload. Each
// sub-block is a length byte followed by that many payload bytes; a
// zero length byte terminates the sequence. A stream that ends before
// the terminator reports io.ErrUnexpectedEOF.
func ReadBlocks(r io.Reader) ([]byte, error) {
	src := bufio.NewReader(r)

	var payload []byte
	for {
		size, err := src.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if size == 0 {
			return payload, nil
		}

		block := make([]byte, int(size))
		if _, err := io.ReadFull(src, block); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		payload = append(payload, block...)
	}
}
