package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestBinCount(t *testing.T) {
	for _, tc := range []struct{ num, want int }{
		{1, 1}, {2, 2}, {7, 4}, {8, 5}, {2048, 1025},
	} {
		if got := BinCount(tc.num); got != tc.want {
			t.Errorf("BinCount(%d)=%d want=%d", tc.num, got, tc.want)
		}
	}
}

func TestFrequencyGridEven(t *testing.T) {
	grid, err := FrequencyGrid(8)
	if err != nil {
		t.Fatalf("FrequencyGrid: %v", err)
	}

	if len(grid) != 5 {
		t.Fatalf("len=%d want=5", len(grid))
	}
	for k, f := range grid {
		want := float64(k) * math.Pi / 4
		if math.Abs(f-want) > 1e-15 {
			t.Errorf("grid[%d]=%v want=%v", k, f, want)
		}
	}
	if grid[4] != math.Pi {
		t.Errorf("last frequency=%v want exactly pi", grid[4])
	}
}

func TestFrequencyGridOdd(t *testing.T) {
	grid, err := FrequencyGrid(7)
	if err != nil {
		t.Fatalf("FrequencyGrid: %v", err)
	}

	if len(grid) != 4 {
		t.Fatalf("len=%d want=4", len(grid))
	}
	if last := grid[3]; last >= math.Pi || math.Abs(last-6*math.Pi/7) > 1e-15 {
		t.Errorf("last frequency=%v want 6pi/7", last)
	}
}

func TestFrequencyGridUniform(t *testing.T) {
	grid, err := FrequencyGrid(2048)
	if err != nil {
		t.Fatalf("FrequencyGrid: %v", err)
	}

	step := 2 * math.Pi / 2048
	for k := 1; k < len(grid); k++ {
		if d := grid[k] - grid[k-1]; math.Abs(d-step) > 1e-12 {
			t.Fatalf("spacing at %d = %v want %v", k, d, step)
		}
	}
}

func TestFrequencyGridInvalid(t *testing.T) {
	for _, num := range []int{0, -4} {
		if _, err := FrequencyGrid(num); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("FrequencyGrid(%d) err=%v want ErrInvalidLength", num, err)
		}
	}
}
