package encio

import (
	"fmt"
	"strconv"
)

// ItemEncodeError identifies the element of a sequence that failed to encode.
type ItemEncodeError struct {
	Index int
	Err   error
}

func (e ItemEncodeError) Error() string {
	return fmt.Sprintf("could not encode item at (%d): %v", e.Index, e.Err)
}

func (e ItemEncodeError) Unwrap() error { return e.Err }

// ItemDecodeError identifies the element of a sequence that failed to decode.
type ItemDecodeError struct {
	Index int
	Err   error
}

func (e ItemDecodeError) Error() string {
	return fmt.Sprintf("could not decode item at (%d): %v", e.Index, e.Err)
}

func (e ItemDecodeError) Unwrap() error { return e.Err }

// CollectionErrorKind tells which part of a collection failed.
type CollectionErrorKind uint8

const (
	// BadLength means the length prefix could not be encoded, decoded, or honoured.
	BadLength CollectionErrorKind = iota + 1
	// BadItem means an element failed; Err is then usually an ItemEncodeError or ItemDecodeError.
	BadItem
)

func (k CollectionErrorKind) String() string {
	switch k {
	case BadLength:
		return "length"
	case BadItem:
		return "item"
	default:
		return "CollectionErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// CollectionEncodeError is returned when a length-prefixed collection fails to encode.
type CollectionEncodeError struct {
	Kind CollectionErrorKind
	Err  error
}

func (e CollectionEncodeError) Error() string {
	return fmt.Sprintf("unable to encode collection %v: %v", e.Kind, e.Err)
}

func (e CollectionEncodeError) Unwrap() error { return e.Err }

// CollectionDecodeError is returned when a length-prefixed collection fails to decode.
// A declared length that exceeds the capacity or the remaining input is reported
// with Kind BadLength, before any element is decoded.
type CollectionDecodeError struct {
	Kind CollectionErrorKind
	Err  error
}

func (e CollectionDecodeError) Error() string {
	return fmt.Sprintf("unable to decode collection %v: %v", e.Kind, e.Err)
}

func (e CollectionDecodeError) Unwrap() error { return e.Err }

// EnumErrorKind tells which part of an enumeration failed.
type EnumErrorKind uint8

const (
	// BadDiscriminant means the discriminant could not be encoded.
	BadDiscriminant EnumErrorKind = iota + 1
	// InvalidDiscriminant means the discriminant could not be read at all.
	InvalidDiscriminant
	// UnassignedDiscriminant means the discriminant was read but names no variant.
	UnassignedDiscriminant
	// BadField means a field of the selected variant failed.
	BadField
)

func (k EnumErrorKind) String() string {
	switch k {
	case BadDiscriminant:
		return "bad discriminant"
	case InvalidDiscriminant:
		return "invalid discriminant"
	case UnassignedDiscriminant:
		return "unassigned discriminant"
	case BadField:
		return "bad field"
	default:
		return "EnumErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// EnumEncodeError is returned when an enumeration value fails to encode.
type EnumEncodeError struct {
	Kind EnumErrorKind
	Err  error
}

func (e EnumEncodeError) Error() string {
	if e.Err == nil {
		return "unable to encode enumeration: " + e.Kind.String()
	}
	return fmt.Sprintf("unable to encode enumeration: %v: %v", e.Kind, e.Err)
}

func (e EnumEncodeError) Unwrap() error { return e.Err }

// EnumDecodeError is returned when an enumeration value fails to decode.
// Value is only meaningful for UnassignedDiscriminant.
type EnumDecodeError struct {
	Kind  EnumErrorKind
	Value Discriminant
	Err   error
}

func (e EnumDecodeError) Error() string {
	switch e.Kind {
	case UnassignedDiscriminant:
		return fmt.Sprintf("`%v` is not an assigned discriminant for the given enumeration", e.Value)
	case InvalidDiscriminant:
		return fmt.Sprintf("discriminant could not be decoded: %v", e.Err)
	default:
		return fmt.Sprintf("variant could not be decoded: %v", e.Err)
	}
}

func (e EnumDecodeError) Unwrap() error { return e.Err }

// Discriminant is a raw enumeration tag as it appeared on the wire.
type Discriminant struct {
	Bits   uint64
	Width  int
	Signed bool
}

// Int64 returns the discriminant sign-extended from its width when it is signed.
func (d Discriminant) Int64() int64 {
	if !d.Signed || d.Width >= 8 {
		return int64(d.Bits)
	}
	shift := 64 - 8*uint(d.Width)
	return int64(d.Bits<<shift) >> shift
}

func (d Discriminant) String() string {
	var prefix byte = 'u'
	v := strconv.FormatUint(d.Bits, 10)
	if d.Signed {
		prefix = 'i'
		v = strconv.FormatInt(d.Int64(), 10)
	}
	return v + string(prefix) + strconv.Itoa(8*d.Width)
}

// FieldError identifies the field or variant of a composite type that failed.
type FieldError struct {
	Type  string
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Type, e.Field, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }
