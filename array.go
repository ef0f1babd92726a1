package dynarr

// DefaultCapacity is the slot count allocated when no explicit capacity
// is given, and the capacity a zero-capacity array grows to on the
// first Push.
const DefaultCapacity = 16

// Array is an ordered, indexable sequence of T backed by a contiguous
// buffer the array exclusively owns. The zero value is an empty array
// with no storage; the first Push allocates DefaultCapacity slots.
type Array[T any] struct {
	buf    []T // len(buf) is the capacity
	size   int
	grows  int
	copied int
}

// New returns an empty array with DefaultCapacity slots allocated.
func New[T any]() *Array[T] {
	return &Array[T]{buf: make([]T, DefaultCapacity)}
}

// WithCapacity returns an empty array with the given number of slots
// allocated. Capacities below 1 fail with ErrInvalidCapacity.
func WithCapacity[T any](capacity int) (*Array[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Array[T]{buf: make([]T, capacity)}, nil
}

// Filled returns an array of the given capacity with every slot set to
// value, so the result is full (Len == Cap). Capacities below 1 fail
// with ErrInvalidCapacity.
func Filled[T any](capacity int, value T) (*Array[T], error) {
	a, err := WithCapacity[T](capacity)
	if err != nil {
		return nil, err
	}
	for i := range a.buf {
		a.buf[i] = value
	}
	a.size = capacity
	return a, nil
}

// Of returns an array holding the given values in order, with capacity
// equal to the value count. An empty value list fails with
// ErrInvalidCapacity, matching the zero-capacity rule.
func Of[T any](values ...T) (*Array[T], error) {
	a, err := WithCapacity[T](len(values))
	if err != nil {
		return nil, err
	}
	copy(a.buf, values)
	a.size = len(values)
	return a, nil
}

// Clone returns a deep copy at the source's capacity. The copy shares
// no storage with the receiver.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{
		buf:  make([]T, len(a.buf)),
		size: a.size,
	}
	copy(c.buf, a.buf[:a.size])
	return c
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// The new buffer is built in full before ownership transfers, so the
// receiver is untouched until the copy has succeeded, and copying an
// array onto itself is harmless.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	buf := make([]T, len(src.buf))
	copy(buf, src.buf[:src.size])

	a.buf = buf
	a.size = src.size
	a.grows = 0
	a.copied = 0
}

// Push appends value, growing the buffer first if it is full.
// Amortized O(1); a growing call is O(n).
func (a *Array[T]) Push(value T) {
	if a.size == len(a.buf) {
		a.grow(len(a.buf) * 2)
	}
	a.buf[a.size] = value
	a.size++
}

// Pop removes and returns the last element. The vacated slot is zeroed
// so the buffer drops its reference; storage is never shrunk. Fails
// with ErrEmpty on an empty array.
func (a *Array[T]) Pop() (T, error) {
	var zero T
	if a.size == 0 {
		return zero, ErrEmpty
	}
	a.size--
	v := a.buf[a.size]
	a.buf[a.size] = zero
	return v, nil
}

// Clear removes all elements but keeps the allocated capacity, leaving
// the array empty and ready for reuse.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.buf[i] = zero
	}
	a.size = 0
}

// Reset releases the buffer entirely, returning the array to its zero
// state (length 0, capacity 0). The next Push allocates
// DefaultCapacity slots.
func (a *Array[T]) Reset() {
	a.buf = nil
	a.size = 0
	a.grows = 0
	a.copied = 0
}

// Reserve grows the buffer to hold at least capacity elements. It
// never shrinks and keeps all current elements.
func (a *Array[T]) Reserve(capacity int) {
	if capacity <= len(a.buf) {
		return
	}
	a.grow(capacity)
}

// grow reallocates to want slots (DefaultCapacity when growing from a
// zero-capacity buffer) and copies the valid prefix across in order.
func (a *Array[T]) grow(want int) {
	if want < 1 {
		want = DefaultCapacity
	}
	buf := make([]T, want)
	copy(buf, a.buf[:a.size])
	a.buf = buf
	a.grows++
	a.copied += a.size
}

// At returns the element at index i. Indices outside [0, Len) fail
// with an *IndexError wrapping ErrOutOfRange.
func (a *Array[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.size {
		return zero, &IndexError{Index: i, Len: a.size}
	}
	return a.buf[i], nil
}

// Set overwrites the element at index i, with the same bounds contract
// as At.
func (a *Array[T]) Set(i int, value T) error {
	if i < 0 || i >= a.size {
		return &IndexError{Index: i, Len: a.size}
	}
	a.buf[i] = value
	return nil
}

// Front returns the first element, failing with ErrEmpty on an empty
// array.
func (a *Array[T]) Front() (T, error) {
	var zero T
	if a.size == 0 {
		return zero, ErrEmpty
	}
	return a.buf[0], nil
}

// Back returns the last element, failing with ErrEmpty on an empty
// array.
func (a *Array[T]) Back() (T, error) {
	var zero T
	if a.size == 0 {
		return zero, ErrEmpty
	}
	return a.buf[a.size-1], nil
}

// Len returns the number of valid elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.buf) }

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool { return a.size == 0 }

// Snapshot returns a copy of the valid elements [0, Len). The internal
// buffer is never exposed.
func (a *Array[T]) Snapshot() []T {
	out := make([]T, a.size)
	copy(out, a.buf[:a.size])
	return out
}
