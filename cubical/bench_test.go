package cubical_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cubicalripser/cubical"
)

func BenchmarkCompute(b *testing.B) {
	shapes := [][]int{
		{64, 64},
		{16, 16, 16},
		{6, 6, 6, 6},
	}
	for _, ext := range shapes {
		g := randomGrid(b, 42, 256, 1000, ext...)
		for _, m := range methods {
			b.Run(fmt.Sprintf("%v/%s", ext, m), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := cubical.Compute(g, cubical.WithMethod(m)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkNewGrid(b *testing.B) {
	values := make([]float64, 128*128)
	for i := range values {
		values[i] = float64(i % 97)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cubical.NewGrid([]int{128, 128}, values, 1000); err != nil {
			b.Fatal(err)
		}
	}
}
