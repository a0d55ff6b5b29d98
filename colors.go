package animimage

import (
	"fmt"
	"image"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// ColorTable converts a packed table of RGB triplets, as stored in a
// GIF global or local color table, into a palette.
func ColorTable(rgb []byte) (color.Palette, error) {
	if len(rgb)%3 != 0 {
		return nil, fmt.Errorf("animimage: color table length %d is not a multiple of 3", len(rgb))
	}

	p := make(color.Palette, 0, len(rgb)/3)
	for i := 0; i < len(rgb); i += 3 {
		p = append(p, color.RGBA{R: rgb[i], G: rgb[i+1], B: rgb[i+2], A: 0xFF})
	}
	return p, nil
}

// FallbackPalette returns n distinct colors, evenly spaced around the
// hue circle, for rendering a frame when no color table is at hand.
func FallbackPalette(n int) color.Palette {
	p := make(color.Palette, n)
	for i := range p {
		h := float64(i) * 360 / float64(n)
		p[i] = clr.Hsv(h, 0.7, 0.9).Clamped()
	}
	return p
}

// Image rasters decoded indices into a paletted image in raster
// order. Every index must fall inside the palette and len(pix) must
// equal w*h.
func Image(pix []uint16, w, h int, p color.Palette) (*image.Paletted, error) {
	if w < 0 || h < 0 || len(pix) != w*h {
		return nil, fmt.Errorf("animimage: %d indices for a %dx%d frame", len(pix), w, h)
	}

	img := image.NewPaletted(image.Rect(0, 0, w, h), p)
	for i, c := range pix {
		if int(c) >= len(p) {
			return nil, fmt.Errorf("animimage: index %d outside color table of %d entries", c, len(p))
		}
		img.Pix[i] = uint8(c)
	}
	return img, nil
}
