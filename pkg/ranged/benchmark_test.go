package ranged_test

import (
	"testing"

	"github.com/zwhiteley/ranger/pkg/ranged"
)

func BenchmarkNew(b *testing.B) {
	b.Run("valid", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = ranged.New(50, 0, 100)
		}
	})

	b.Run("too small", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = ranged.New(-1, 0, 100)
		}
	})

	b.Run("invalid range", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = ranged.New(50, 100, 0)
		}
	})
}

func BenchmarkNewUnchecked(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ranged.NewUnchecked(50, 0, 100)
	}
}

func BenchmarkValue(b *testing.B) {
	r := ranged.NewUnchecked(50, 0, 100)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = r.Value()
	}
}

func BenchmarkContains(b *testing.B) {
	r := ranged.NewUnchecked(50, 0, 100)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = r.Contains(75)
	}
}
