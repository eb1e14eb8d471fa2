package mandel

// Escape radius squared. |z| > 2 guarantees the orbit of z = z^2 + c diverges.
const escapeNorm = 4.0

// EscapeTime iterates z = z^2 + c from z = 0 and returns the index of the
// first iteration at which |z|^2 > 4. The test runs before each step, so
// iteration 0 always sees z = 0. If limit iterations pass without escape,
// ok is false and c is taken to be in the set.
func EscapeTime(c complex128, limit int) (n int, ok bool) {
	cre, cim := real(c), imag(c)
	var zre, zim float64
	for i := 0; i < limit; i++ {
		zre2, zim2 := zre*zre, zim*zim
		if zre2+zim2 > escapeNorm {
			return i, true
		}
		zim = 2*zre*zim + cim
		zre = zre2 - zim2 + cre
	}
	return 0, false
}

// Intensity converts an escape result to a gray level. Points in the set
// are black. For limits up to 256 a point escaping at n gets 255-n; larger
// limits are scaled down so the result still fits in a byte.
func Intensity(n int, ok bool, limit int) uint8 {
	if !ok {
		return 0
	}
	if limit > 256 {
		n = n * 256 / limit
	}
	return uint8(255 - n)
}
