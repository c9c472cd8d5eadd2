package fixed

import (
	"cmp"
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

// Vec is a vector of at most N elements of T, where A is [N]T.
// The zero value is an empty vector. A Vec is a value; copying it copies its elements.
type Vec[T, A any] struct {
	buf A
	len int
}

// New returns a Vec holding a copy of data.
// If data is longer than the capacity, it returns encio.LengthError.
func New[T, A any](data []T) (Vec[T, A], error) {
	var v Vec[T, A]
	if err := v.CopyFrom(data); err != nil {
		return v, err
	}
	return v, nil
}

// NewUnchecked is New for data the caller knows fits. It panics otherwise.
func NewUnchecked[T, A any](data []T) Vec[T, A] {
	v, err := New[T, A](data)
	if err != nil {
		panic(encio.Misuse(encio.ErrBadType, "%v", err))
	}
	return v
}

// FromArray returns a full Vec holding the elements of a.
func FromArray[T, A any](a A) Vec[T, A] {
	return Vec[T, A]{
		buf: a,
		len: capacity[T, A](),
	}
}

// Collect returns a Vec of the first elements of seq, up to the capacity.
// seq is not pulled past the capacity, so surplus elements are never produced.
func Collect[T, A any](seq iter.Seq[T]) Vec[T, A] {
	var v Vec[T, A]
	s := elems[T](&v.buf)
	if len(s) == 0 {
		return v
	}

	for x := range seq {
		s[v.len] = x
		v.len++
		if v.len == len(s) {
			break
		}
	}
	return v
}

// TryCollect returns a Vec of all elements of seq.
// If seq yields more elements than the capacity, it returns encio.LengthError;
// the collected elements and the first surplus element are released.
func TryCollect[T, A any](seq iter.Seq[T]) (Vec[T, A], error) {
	var (
		v    Vec[T, A]
		over bool
	)
	s := elems[T](&v.buf)

	for x := range seq {
		if v.len == len(s) {
			releaseOne(&x)
			over = true
			break
		}
		s[v.len] = x
		v.len++
	}

	if over {
		v.Release()
		return v, encio.LengthError{Remaining: 0, Count: 1}
	}
	return v, nil
}

// Len returns the number of elements.
func (v *Vec[T, A]) Len() int { return v.len }

// Cap returns N.
func (v *Vec[T, A]) Cap() int { return capacity[T, A]() }

// IsEmpty reports whether the Vec has no elements.
func (v *Vec[T, A]) IsEmpty() bool { return v.len == 0 }

// IsFull reports whether the Vec is at capacity.
func (v *Vec[T, A]) IsFull() bool { return v.len == v.Cap() }

// Slice returns the elements. It aliases the storage of v.
func (v *Vec[T, A]) Slice() []T { return elems[T](&v.buf)[:v.len:v.len] }

// ToSlice returns a newly allocated copy of the elements.
func (v *Vec[T, A]) ToSlice() []T { return slices.Clone(v.Slice()) }

// At returns the element at i. It panics if i is out of range.
func (v *Vec[T, A]) At(i int) T { return v.Slice()[i] }

// Get returns the element at i, or false if i is out of range.
func (v *Vec[T, A]) Get(i int) (T, bool) {
	if i < 0 || i >= v.len {
		var zero T
		return zero, false
	}
	return v.Slice()[i], true
}

// Set replaces the element at i, releasing the old one. It returns false if i is out of range.
func (v *Vec[T, A]) Set(i int, x T) bool {
	if i < 0 || i >= v.len {
		return false
	}
	s := v.Slice()
	releaseOne(&s[i])
	s[i] = x
	return true
}

// All returns an iterator over the indices and elements.
func (v *Vec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Slice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Push appends x. If the Vec is full it returns encio.LengthError and x is not added.
func (v *Vec[T, A]) Push(x T) error {
	s := elems[T](&v.buf)
	if v.len == len(s) {
		return encio.LengthError{Remaining: 0, Count: 1}
	}
	s[v.len] = x
	v.len++
	return nil
}

// Pop removes and returns the last element.
func (v *Vec[T, A]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}

	s := elems[T](&v.buf)
	v.len--
	x := s[v.len]
	s[v.len] = zero
	return x, true
}

// CopyFrom replaces the contents of v with a copy of data, releasing the previous elements.
// If data is longer than the capacity, it returns encio.LengthError and v is unchanged.
func (v *Vec[T, A]) CopyFrom(data []T) error {
	s := elems[T](&v.buf)
	if len(data) > len(s) {
		return encio.LengthError{Remaining: len(s), Count: len(data)}
	}

	release(s[:v.len])
	v.len = copy(s, data)
	return nil
}

// SetLen sets the length of v. Shrinking releases the removed elements and zeroes their slots.
// Growing exposes whatever the slots hold: zero values, unless SetLenUnchecked cut elements
// off, in which case those elements are exposed again.
// If n is negative or above the capacity, it returns encio.LengthError and v is unchanged.
func (v *Vec[T, A]) SetLen(n int) error {
	s := elems[T](&v.buf)
	if n < 0 || n > len(s) {
		return encio.LengthError{Remaining: len(s), Count: n}
	}

	if n < v.len {
		release(s[n:v.len])
	}
	v.len = n
	return nil
}

// SetLenUnchecked sets the length of v without releasing or zeroing anything.
// Elements cut off remain in storage and are exposed again if the length grows.
// It panics if n is out of range.
func (v *Vec[T, A]) SetLenUnchecked(n int) {
	if n < 0 || n > v.Cap() {
		panic(encio.Misuse(encio.ErrBadType, "length out of range"))
	}
	v.len = n
}

// Clone returns a copy of v. Elements implementing Clone() T are cloned; others are copied.
func (v *Vec[T, A]) Clone() Vec[T, A] {
	c := *v
	s := elems[T](&c.buf)[:c.len]
	for i := range s {
		if cl, ok := any(s[i]).(interface{ Clone() T }); ok {
			s[i] = cl.Clone()
		}
	}
	return c
}

// Release releases every element and empties v.
func (v *Vec[T, A]) Release() {
	release(elems[T](&v.buf)[:v.len])
	v.len = 0
}

// IntoIter moves the elements of v into an iterator, leaving v empty.
func (v *Vec[T, A]) IntoIter() IntoIter[T, A] {
	it := IntoIter[T, A]{
		buf:  v.buf,
		back: v.len,
	}

	var zero T
	s := elems[T](&v.buf)[:v.len]
	for i := range s {
		s[i] = zero
	}
	v.len = 0
	return it
}

// Encode writes the length as encode.Usize followed by each element.
// It panics if T does not implement encode.Encoder.
func (v *Vec[T, A]) Encode(out *encio.Output) error {
	if err := encode.EncodeLen(out, v.len); err != nil {
		return err
	}

	s := v.Slice()
	for i := range s {
		if err := encoderOf(&s[i]).Encode(out); err != nil {
			return encio.CollectionEncodeError{
				Kind: encio.BadItem,
				Err:  encio.ItemEncodeError{Index: i, Err: err},
			}
		}
	}
	return nil
}

// Decode replaces the contents of v with a decoded vector.
// A length above the capacity fails with encio.CollectionDecodeError of kind BadLength
// before any element is read. v is only modified if the whole vector decodes.
// It panics if *T does not implement encode.Decoder.
func (v *Vec[T, A]) Decode(in *encio.Input) error {
	n, err := encode.DecodeLen(in, v.Cap())
	if err != nil {
		return err
	}

	var tmp Vec[T, A]
	s := elems[T](&tmp.buf)
	for i := 0; i < n; i++ {
		if err := decoderOf(&s[i]).Decode(in); err != nil {
			tmp.len = i
			tmp.Release()
			return encio.CollectionDecodeError{
				Kind: encio.BadItem,
				Err:  encio.ItemDecodeError{Index: i, Err: err},
			}
		}
	}
	tmp.len = n

	v.Release()
	*v = tmp
	return nil
}

// MaxEncodedSize returns the bound of a full vector: the length prefix and N elements.
// It panics if T does not implement encode.SizedEncoder.
func (v *Vec[T, A]) MaxEncodedSize() int {
	return encode.Usize(0).MaxEncodedSize() + capacity[T, A]()*sizeOf[T]()
}

// Equal reports whether a and b hold equal elements.
func Equal[T comparable, A any](a, b *Vec[T, A]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualSlice reports whether v holds the same elements as s.
func EqualSlice[T comparable, A any](v *Vec[T, A], s []T) bool {
	return slices.Equal(v.Slice(), s)
}

// Compare compares a and b lexicographically.
func Compare[T cmp.Ordered, A any](a, b *Vec[T, A]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// HashBytes returns the xxhash of the bytes held by v.
func HashBytes[A any](v *Vec[byte, A]) uint64 {
	return xxhash.Sum64(v.Slice())
}
