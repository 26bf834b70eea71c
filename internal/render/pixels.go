package render

import "image/color"

// fillCellsRGBA converts boolean cell data into RGBA pixels in buf.
func fillCellsRGBA(buf []byte, g cellSource, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < g.Len(); i++ {
		base := i * 4
		if g.Alive(i) {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// cellSource is the read-only view of a grid the renderer needs.
type cellSource interface {
	Len() int
	Alive(i int) bool
}
