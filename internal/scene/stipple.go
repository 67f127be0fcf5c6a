package scene

import "math"

// StippleOn reports whether a line fragment dist pixels from the start of
// its segment is drawn under a 16-bit stipple pattern repeated factor
// times per bit. Bit 0 is consumed first. The line fragment shader
// evaluates the same test.
func StippleOn(pattern uint16, factor int, dist float32) bool {
	if factor < 1 {
		factor = 1
	}
	if dist < 0 {
		dist = 0
	}
	bit := uint(math.Floor(float64(dist)/float64(factor))) % 16
	return pattern&(1<<bit) != 0
}
