package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Fit copies src into dst, truncating src when it is longer than dst and
// zero-filling the tail of dst when it is shorter. It returns the number of
// samples taken from src.
func Fit(dst, src []float64) int {
	n := copy(dst, src)
	Zero(dst[n:])
	return n
}
