// Package encode defines the Encoder, Decoder and SizedEncoder contracts and the built-in codecs for
// primitive, textual, temporal and network values.
//
// Every codec writes to an *encio.Output and reads from an *encio.Input. Encoding is deterministic:
// equal values always produce equal bytes. A SizedEncoder promises that no value of its type encodes
// to more than MaxEncodedSize bytes, so a buffer of that size can never fail with encio.OutputError.
package encode

import (
	"github.com/stewi1014/oct/encio"
)

// Encoder is implemented by types that can write themselves to an Output.
type Encoder interface {
	// Encode appends the encoding of the receiver at the current position of out.
	// On failure the Output may have advanced; its previously written bytes are untouched.
	Encode(out *encio.Output) error
}

// Decoder is implemented by pointers to types that can be read from an Input.
// Implementations only assign to the receiver once the whole value is decoded,
// so a failed decode leaves the receiver as it was.
type Decoder interface {
	Decode(in *encio.Input) error
}

// SizedEncoder is an Encoder with a static bound on its encoded size.
// MaxEncodedSize must be callable on the zero value and return the same value for every value of the type.
type SizedEncoder interface {
	Encoder
	MaxEncodedSize() int
}

// BorrowDecoder is implemented by pointers to types that decode into a view of the input region
// rather than a copy. The decoded value is only valid while the input bytes are.
type BorrowDecoder interface {
	DecodeBorrowed(in *encio.Input) error
}

// DecoderPtr constrains PT to be a pointer to T that implements Decoder.
type DecoderPtr[T any] interface {
	*T
	Decoder
}

// SizeOf returns the maximum encoded size of T.
func SizeOf[T SizedEncoder]() int {
	var v T
	return v.MaxEncodedSize()
}

// Decode decodes a T from in.
// If decoding fails, the position of in is restored to where it was before the call.
func Decode[T any, PT DecoderPtr[T]](in *encio.Input) (T, error) {
	var v T
	pos := in.Position()
	if err := PT(&v).Decode(in); err != nil {
		in.Rewind(pos)
		var zero T
		return zero, err
	}
	return v, nil
}

// Marshal encodes v into a newly allocated buffer of v.MaxEncodedSize() bytes and returns the used prefix.
func Marshal(v SizedEncoder) ([]byte, error) {
	return MarshalSize(v, v.MaxEncodedSize())
}

// MarshalSize encodes v into a newly allocated buffer of size bytes and returns the used prefix.
// It fails with encio.OutputError if the encoding needs more than size bytes.
func MarshalSize(v Encoder, size int) ([]byte, error) {
	out := encio.NewOutput(make([]byte, size))
	if err := v.Encode(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// AppendEncode encodes v to the end of buff, growing it by at most v.MaxEncodedSize() bytes.
func AppendEncode(buff []byte, v SizedEncoder) ([]byte, error) {
	l := len(buff)
	size := v.MaxEncodedSize()
	if cap(buff)-l < size {
		grown := make([]byte, l, l+size)
		copy(grown, buff)
		buff = grown
	}

	out := encio.NewOutput(buff[l : l+size])
	if err := v.Encode(out); err != nil {
		return buff[:l], err
	}
	return buff[:l+out.Position()], nil
}

// Unmarshal decodes a T that must occupy all of data.
// If bytes are left over, it returns encio.TrailingBytesError.
func Unmarshal[T any, PT DecoderPtr[T]](data []byte) (T, error) {
	in := encio.NewInput(data)
	v, err := Decode[T, PT](in)
	if err != nil {
		return v, err
	}
	if in.Remaining() != 0 {
		var zero T
		return zero, encio.TrailingBytesError{
			Len:      len(data),
			Consumed: in.Position(),
		}
	}
	return v, nil
}

// All encodes each of encs in order, stopping at the first failure.
// It is the encoding of a tuple of the values.
func All(out *encio.Output, encs ...Encoder) error {
	for _, e := range encs {
		if err := e.Encode(out); err != nil {
			return err
		}
	}
	return nil
}

// DecodeAll decodes each of decs in order, stopping at the first failure.
// Decoders before the failing one have already been assigned.
func DecodeAll(in *encio.Input, decs ...Decoder) error {
	for _, d := range decs {
		if err := d.Decode(in); err != nil {
			return err
		}
	}
	return nil
}

// MaxSize sums the maximum encoded sizes of the given values.
// It is the bound for encoding them with All.
func MaxSize(encs ...SizedEncoder) int {
	var n int
	for _, e := range encs {
		n += e.MaxEncodedSize()
	}
	return n
}
