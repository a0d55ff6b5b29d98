// Package animimage decodes the LZW-compressed pixel data of GIF
// images.
//
// A GIF image stores its pixels as a stream of variable-width LZW
// codes, split into data sub-blocks of up to 255 bytes each. This
// package deframes the sub-blocks, expands the code stream back into
// color-table indices, and can apply a color table to turn the
// indices into a paletted image. Parsing the surrounding GIF
// container (header, logical screen descriptor, extensions) is left
// to the caller.
package animimage

import (
	"io"

	"github.com/ncassetta/animimage/lzw"
)

// DecodeFrame reads the data sub-blocks of one image from r and
// expands the LZW code stream they carry. litWidth is the image's
// "LZW minimum code size" byte, which immediately precedes the
// sub-blocks in the file.
func DecodeFrame(litWidth uint, r io.Reader) ([]uint16, error) {
	data, err := ReadBlocks(r)
	if err != nil {
		return nil, err
	}
	return lzw.Decode(litWidth, data)
}
