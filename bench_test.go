package dynarr

import "testing"

func BenchmarkPush(b *testing.B) {
	a := New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Push(i)
	}
}

func BenchmarkPushReserved(b *testing.B) {
	a := New[int]()
	a.Reserve(b.N)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Push(i)
	}
}

func BenchmarkPushFromZero(b *testing.B) {
	var a Array[int]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Push(i)
	}
}

func BenchmarkAt(b *testing.B) {
	a := New[int]()
	for i := 0; i < 1024; i++ {
		a.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.At(i & 1023)
	}
}

func BenchmarkClone(b *testing.B) {
	a := New[int]()
	for i := 0; i < 1024; i++ {
		a.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Clone()
	}
}
