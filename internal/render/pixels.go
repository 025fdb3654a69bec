package render

import "image/color"

// fillCells writes one RGBA pixel per cell: p.Live for any non-zero value,
// p.Dead otherwise. buf must hold 4*len(cells) bytes.
func fillCells(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		col := p.Dead
		if c != 0 {
			col = p.Live
		}
		putRGBA(buf[i*4:i*4+4], col)
	}
}

func putRGBA(px []byte, c color.RGBA) {
	px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
}
