package lockfree_test

import (
	"sync"
	"testing"

	"github.com/hupe1980/lockfree"
)

func BenchmarkVector_PushBack(b *testing.B) {
	v := lockfree.New[int](lockfree.WithCapacity(b.N))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVector_Get(b *testing.B) {
	const n = 1 << 16
	v := lockfree.New[int](lockfree.WithCapacity(n))
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Get(i & (n - 1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVector_Set(b *testing.B) {
	const n = 1 << 10
	v := lockfree.New[int](lockfree.WithCapacity(n))
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Set(i&(n-1), i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVector_PushBack_Parallel(b *testing.B) {
	v := lockfree.New[int](lockfree.WithCapacity(b.N))
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if err := v.PushBack(1); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkVector_Get_Parallel(b *testing.B) {
	const n = 1 << 16
	v := lockfree.New[int](lockfree.WithCapacity(n))
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if _, err := v.Get(i & (n - 1)); err != nil {
				b.Fatal(err)
			}
			i++
		}
	})
}

// BenchmarkMutexSlice_PushBack_Parallel is the locking baseline the
// lock-free design is measured against.
func BenchmarkMutexSlice_PushBack_Parallel(b *testing.B) {
	var (
		mu sync.Mutex
		s  []int
	)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.Lock()
			s = append(s, 1)
			mu.Unlock()
		}
	})
	_ = s
}
