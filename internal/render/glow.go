package render

// glowRGBA fills a premultiplied RGBA pixel buffer with a radial glow blob
// of the given radius: full tint at the center falling off quadratically to
// transparent at the rim. The buffer covers a (2r)x(2r) square.
func glowRGBA(buf []byte, radius int, r, g, b uint8) {
	size := 2 * radius
	c := float64(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := (dx*dx + dy*dy) / (c * c)
			base := 4 * (y*size + x)
			if d >= 1 {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			f := 1 - d
			a := 180 * f * f / 255
			buf[base+0] = uint8(float64(r) * a)
			buf[base+1] = uint8(float64(g) * a)
			buf[base+2] = uint8(float64(b) * a)
			buf[base+3] = uint8(255 * a)
		}
	}
}
