package spectrum

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-psd/dsp/window"
	"github.com/cwbudde/algo-psd/internal/testutil"
)

func BenchmarkPeriodogramRaw(b *testing.B) {
	for _, num := range []int{1000, 2048} {
		x := testutil.GaussianNoise(1, 1, 500)
		p, err := NewPeriodogram(num)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%s/%d", p.Normalization(), num), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := p.Raw(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSmooth(b *testing.B) {
	power := testutil.GaussianNoise(2, 1, 1025)

	for _, length := range []int{21, 201} {
		b.Run(fmt.Sprintf("w%d", length), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Smooth(power, length, window.TypeHamming); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
