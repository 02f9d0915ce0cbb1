package spectrum

import "math"

// BinCount returns the number of non-negative frequency bins, num/2 + 1.
func BinCount(num int) int {
	return num/2 + 1
}

// FrequencyGrid returns the num/2+1 radial frequencies 2*pi*k/num,
// k = 0..num/2, of a length-num transform. For even num the grid ends at pi.
// The grid depends only on num, never on the signal length.
func FrequencyGrid(num int) ([]float64, error) {
	if err := validateNum(num); err != nil {
		return nil, err
	}

	out := make([]float64, BinCount(num))
	step := 2 * math.Pi / float64(num)
	for k := range out {
		out[k] = step * float64(k)
	}
	if num%2 == 0 {
		out[len(out)-1] = math.Pi
	}

	return out, nil
}
