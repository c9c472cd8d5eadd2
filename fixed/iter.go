package fixed

import "iter"

// IntoIter is an owning iterator over the elements moved out of a Vec.
// It yields from both ends; the elements not yet yielded are those in [front, back).
// Once exhausted it keeps returning false.
type IntoIter[T, A any] struct {
	buf         A
	front, back int
}

// Len returns the exact number of elements left.
func (it *IntoIter[T, A]) Len() int { return it.back - it.front }

// Slice returns the elements left. It aliases the storage of it.
func (it *IntoIter[T, A]) Slice() []T {
	return elems[T](&it.buf)[it.front:it.back:it.back]
}

// Next returns the element at the front.
func (it *IntoIter[T, A]) Next() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}

	s := elems[T](&it.buf)
	x := s[it.front]
	s[it.front] = zero
	it.front++
	return x, true
}

// NextBack returns the element at the back.
func (it *IntoIter[T, A]) NextBack() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}

	s := elems[T](&it.buf)
	it.back--
	x := s[it.back]
	s[it.back] = zero
	return x, true
}

// Nth skips n elements from the front, releasing them, and returns the one after.
// Skipping counts from the current front, so Nth(0) is Next.
func (it *IntoIter[T, A]) Nth(n int) (T, bool) {
	skip := min(max(n, 0), it.Len())
	release(elems[T](&it.buf)[it.front : it.front+skip])
	it.front += skip
	return it.Next()
}

// NthBack skips n elements from the back, releasing them, and returns the one before.
func (it *IntoIter[T, A]) NthBack(n int) (T, bool) {
	skip := min(max(n, 0), it.Len())
	release(elems[T](&it.buf)[it.back-skip : it.back])
	it.back -= skip
	return it.NextBack()
}

// All returns an iterator that consumes it from the front.
func (it *IntoIter[T, A]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator that consumes it from the back.
func (it *IntoIter[T, A]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.NextBack()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Release releases the elements left and exhausts it.
func (it *IntoIter[T, A]) Release() {
	release(elems[T](&it.buf)[it.front:it.back])
	it.front = it.back
}
