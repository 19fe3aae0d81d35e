package tensor

import (
	"fmt"
	"testing"
)

func BenchmarkTensorCreation(b *testing.B) {
	shape := Shape{100, 100}

	b.Run("Zeros", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Zeros[float32](shape)
		}
	})

	b.Run("Randomize", func(b *testing.B) {
		t := Zeros[float32](shape)
		src := NewSource(1)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			t.Randomize(src, -1, 1)
		}
	})
}

func BenchmarkShapeOperations(b *testing.B) {
	shape := Shape{16, 32, 64}
	coord := []int{7, 19, 42}

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.ComputeStrides()
		}
	})

	b.Run("Offset", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = shape.Offset(coord)
		}
	})
}

func BenchmarkElementwise(b *testing.B) {
	sizes := []int{10, 100, 500}

	for _, size := range sizes {
		x := Zeros[float32](Shape{size, size})
		y := Zeros[float32](Shape{size, size})
		x.Randomize(NewSource(1), -1, 1)
		y.Randomize(NewSource(2), -1, 1)

		b.Run(fmt.Sprintf("Add_%dx%d", size, size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.Add(y)
			}
		})

		b.Run(fmt.Sprintf("AddScalar_%dx%d", size, size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.AddScalar(1)
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	shapes := []Shape{{100, 100}, {10, 20, 30}, {4, 5, 6, 7}}

	for _, s := range shapes {
		t := Zeros[float32](s)
		b.Run(fmt.Sprintf("%v", []int(s)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = t.Transpose()
			}
		})
	}
}
