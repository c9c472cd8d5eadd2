// Package fixed provides containers with a capacity fixed by their type, stored inline without
// heap allocation: Vec, its owning iterator IntoIter, and String.
//
// The capacity N is carried by an array type parameter, so a vector of at most 8 uint16s is a
// Vec[encode.U16, [8]encode.U16] and a string of at most 32 bytes is a String[[32]byte].
// Instantiating a container with a capacity parameter that is not an array of the element type
// panics with encio.ErrBadType.
//
// Go has no destructors. Elements whose pointer implements Releaser are released exactly once when
// they leave a container without being handed to the caller: on Release, when truncated, when
// overwritten, or when skipped by an iterator. Vacated slots are always zeroed.
package fixed

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

// Releaser is implemented by elements that hold resources to be freed when a container drops them.
type Releaser interface {
	Release()
}

type capacityKey struct {
	elem, array reflect.Type
}

var capacities sync.Map // capacityKey -> int

// capacity returns N for an A of [N]T, panicking if A is anything else.
func capacity[T, A any]() int {
	key := capacityKey{
		elem:  reflect.TypeFor[T](),
		array: reflect.TypeFor[A](),
	}
	if n, ok := capacities.Load(key); ok {
		return n.(int)
	}

	if key.array.Kind() != reflect.Array || key.array.Elem() != key.elem {
		panic(encio.Misuse(encio.ErrBadType, "capacity parameter %v is not an array of %v", key.array, key.elem))
	}

	n := key.array.Len()
	capacities.Store(key, n)
	return n
}

// elems returns the array a as a slice of T of its full length.
func elems[T, A any](a *A) []T {
	n := capacity[T, A]()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(a)), n)
}

// release releases and zeroes every element of s.
func release[T any](s []T) {
	var zero T
	for i := range s {
		if r, ok := any(&s[i]).(Releaser); ok {
			r.Release()
		}
		s[i] = zero
	}
}

// releaseOne releases v if it is a Releaser.
func releaseOne[T any](v *T) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}

func encoderOf[T any](v *T) encode.Encoder {
	e, ok := any(v).(encode.Encoder)
	if !ok {
		panic(encio.Misuse(encio.ErrBadType, "%v does not implement encode.Encoder", reflect.TypeFor[T]()))
	}
	return e
}

func decoderOf[T any](v *T) encode.Decoder {
	d, ok := any(v).(encode.Decoder)
	if !ok {
		panic(encio.Misuse(encio.ErrBadType, "*%v does not implement encode.Decoder", reflect.TypeFor[T]()))
	}
	return d
}

func sizeOf[T any]() int {
	var zero T
	s, ok := any(&zero).(encode.SizedEncoder)
	if !ok {
		panic(encio.Misuse(encio.ErrBadType, "%v does not implement encode.SizedEncoder", reflect.TypeFor[T]()))
	}
	return s.MaxEncodedSize()
}
