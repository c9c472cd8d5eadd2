package encio

import (
	"fmt"
	"math"
)

// UsizeEncodeError is returned when an unsigned size does not fit in the 16-bit wire domain.
type UsizeEncodeError struct {
	Value uint64
}

func (e UsizeEncodeError) Error() string {
	return fmt.Sprintf("unsigned size value (%d) cannot be encoded: must be at most (%d)", e.Value, math.MaxUint16)
}

// IsizeEncodeError is returned when a signed size does not fit in the 16-bit wire domain.
type IsizeEncodeError struct {
	Value int64
}

func (e IsizeEncodeError) Error() string {
	return fmt.Sprintf("signed size value (%d) cannot be encoded: must be in the range (%d) to (%d)", e.Value, math.MinInt16, math.MaxInt16)
}

// BoolDecodeError is returned when a boolean byte is neither 0 nor 1.
type BoolDecodeError struct {
	Value byte
}

func (e BoolDecodeError) Error() string {
	return fmt.Sprintf("value %#02x is not boolean", e.Value)
}

// CharEncodeError is returned when a rune to encode is not a Unicode scalar value:
// a surrogate, a negative value or one above U+10FFFF.
type CharEncodeError struct {
	CodePoint int32
}

func (e CharEncodeError) Error() string {
	return fmt.Sprintf("rune %#x is not a Unicode scalar value", e.CodePoint)
}

// CharDecodeError is returned when a decoded 32-bit value is not a Unicode scalar value.
type CharDecodeError struct {
	CodePoint uint32
}

func (e CharDecodeError) Error() string {
	return fmt.Sprintf("code point U+%04X is not defined", e.CodePoint)
}

// Utf8Error reports the first byte of an invalid UTF-8 sequence.
type Utf8Error struct {
	Value byte
	Index int
}

func (e Utf8Error) Error() string {
	return fmt.Sprintf("found invalid utf-8 octet %#02x at offset (%d)", e.Value, e.Index)
}

// CharBoundaryError is returned when an operation on a fixed string would split a code point.
type CharBoundaryError struct {
	Index int
}

func (e CharBoundaryError) Error() string {
	return fmt.Sprintf("index (%d) is not on a character boundary", e.Index)
}

// TimeRangeError is returned when a duration cannot be represented on one side of the wire:
// negative durations cannot be encoded, and decoded durations must fit in a time.Duration
// with Nanos below one second.
type TimeRangeError struct {
	Secs     uint64
	Nanos    uint32
	Negative bool
}

func (e TimeRangeError) Error() string {
	if e.Negative {
		return fmt.Sprintf("negative duration of (%d)s and (%d)ns cannot be encoded", e.Secs, e.Nanos)
	}
	return fmt.Sprintf("duration of (%d)s and (%d)ns is out of range", e.Secs, e.Nanos)
}
