package encio

import "fmt"

// OutputError is returned when a write does not fit in the remaining capacity of an Output.
type OutputError struct {
	Capacity int
	Position int
	Count    int
}

func (e OutputError) Error() string {
	return fmt.Sprintf("cannot write (%d) bytes at (%d) to output with capacity of (%d)", e.Count, e.Position, e.Capacity)
}

// InputError is returned when a read asks for more bytes than remain in an Input.
type InputError struct {
	Capacity int
	Position int
	Count    int
}

func (e InputError) Error() string {
	return fmt.Sprintf("cannot read (%d) bytes at (%d) from input with capacity of (%d)", e.Count, e.Position, e.Capacity)
}

// LengthError is returned when a fixed-capacity container, or the remaining input,
// cannot hold Count more elements.
type LengthError struct {
	Remaining int
	Count     int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("collection with (%d) remaining capacity cannot hold (%d) more elements", e.Remaining, e.Count)
}

// TrailingBytesError is returned when a value was decoded from a buffer without
// consuming all of it.
type TrailingBytesError struct {
	Len      int
	Consumed int
}

func (e TrailingBytesError) Error() string {
	return fmt.Sprintf("decoded value used (%d) of (%d) bytes", e.Consumed, e.Len)
}
