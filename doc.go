// Package dynarr provides a generic resizable-array container with
// amortized constant-time append, bounds-checked random access, and
// automatic capacity doubling.
//
// The package defines a single container type and its error surface:
//
//   - [Array]: ordered, indexable sequence backed by an exclusively
//     owned contiguous buffer
//   - [Stats]: structured debug description (length, capacity, growth
//     counters)
//   - [IndexError]: detailed out-of-range failure, unwraps to
//     [ErrOutOfRange]
//
// # Example
//
//	a := dynarr.New[int]()
//	a.Push(3)
//	a.Push(1)
//	v, _ := a.Back() // 1
//	_ = v
//
// # Growth
//
// Push doubles the capacity when the buffer is full (a zero-capacity
// array grows to [DefaultCapacity]), copying every element into the new
// buffer in order. Storage is never shrunk; Clear keeps the capacity and
// Reset releases it entirely. Allocation failure surfaces as a runtime
// panic from make, as for any Go slice allocation.
//
// # Thread Safety
//
// Array instances are NOT thread-safe. Callers sharing an array across
// goroutines must synchronize externally.
package dynarr
