package encode

import (
	"unicode/utf8"
	"unsafe"

	"github.com/stewi1014/oct/encio"
)

// EncodeLen writes a collection length as a Usize.
// Lengths that do not fit fail with encio.CollectionEncodeError of kind BadLength.
func EncodeLen(out *encio.Output, n int) error {
	if err := Usize(n).Encode(out); err != nil {
		return encio.CollectionEncodeError{Kind: encio.BadLength, Err: err}
	}
	return nil
}

// DecodeLen reads a collection length.
// If limit is not negative, lengths above it fail with encio.CollectionDecodeError of kind BadLength
// before any element is read.
func DecodeLen(in *encio.Input, limit int) (int, error) {
	var n Usize
	if err := n.Decode(in); err != nil {
		return 0, encio.CollectionDecodeError{Kind: encio.BadLength, Err: err}
	}
	if limit >= 0 && int(n) > limit {
		return 0, encio.CollectionDecodeError{
			Kind: encio.BadLength,
			Err: encio.LengthError{
				Remaining: limit,
				Count:     int(n),
			},
		}
	}
	return int(n), nil
}

// CheckUTF8 returns encio.Utf8Error describing the first invalid sequence in b, or nil.
func CheckUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return encio.Utf8Error{Value: b[i], Index: i}
		}
		i += size
	}
	return nil
}

// encodeBytes writes a length prefix followed by b.
func encodeBytes(out *encio.Output, b []byte) error {
	if err := EncodeLen(out, len(b)); err != nil {
		return err
	}
	if err := out.Write(b); err != nil {
		return encio.CollectionEncodeError{Kind: encio.BadItem, Err: err}
	}
	return nil
}

// decodeBytes reads a length prefix and returns a view of that many following bytes.
func decodeBytes(in *encio.Input) ([]byte, error) {
	n, err := DecodeLen(in, -1)
	if err != nil {
		return nil, err
	}
	b, err := in.Read(n)
	if err != nil {
		return nil, encio.CollectionDecodeError{
			Kind: encio.BadLength,
			Err: encio.LengthError{
				Remaining: in.Remaining(),
				Count:     n,
			},
		}
	}
	return b, nil
}

// Bytes is a length prefixed byte string. Decoding copies the bytes out of the input.
type Bytes []byte

// Encode implements Encoder.
func (v Bytes) Encode(out *encio.Output) error { return encodeBytes(out, v) }

// Decode implements Decoder.
func (v *Bytes) Decode(in *encio.Input) error {
	b, err := decodeBytes(in)
	if err != nil {
		return err
	}
	*v = append(Bytes(nil), b...)
	return nil
}

// BytesRef is a length prefixed byte string that decodes into a view of the input.
type BytesRef []byte

// Encode implements Encoder.
func (v BytesRef) Encode(out *encio.Output) error { return encodeBytes(out, v) }

// DecodeBorrowed implements BorrowDecoder.
func (v *BytesRef) DecodeBorrowed(in *encio.Input) error {
	b, err := decodeBytes(in)
	if err != nil {
		return err
	}
	*v = BytesRef(b)
	return nil
}

// Str is a length prefixed UTF-8 string.
// The length is the number of bytes. Strings holding invalid UTF-8 fail to encode and decode
// with encio.Utf8Error.
type Str string

// Encode implements Encoder.
func (v Str) Encode(out *encio.Output) error {
	b := unsafe.Slice(unsafe.StringData(string(v)), len(v))
	if err := CheckUTF8(b); err != nil {
		return encio.CollectionEncodeError{Kind: encio.BadItem, Err: err}
	}
	return encodeBytes(out, b)
}

// Decode implements Decoder.
func (v *Str) Decode(in *encio.Input) error {
	b, err := decodeBytes(in)
	if err != nil {
		return err
	}
	if err := CheckUTF8(b); err != nil {
		return encio.CollectionDecodeError{Kind: encio.BadItem, Err: err}
	}
	*v = Str(b)
	return nil
}

// StrRef is a length prefixed UTF-8 string that decodes into a view of the input.
// The input bytes must not be modified while the string is in use.
type StrRef string

// Encode implements Encoder.
func (v StrRef) Encode(out *encio.Output) error { return Str(v).Encode(out) }

// DecodeBorrowed implements BorrowDecoder.
func (v *StrRef) DecodeBorrowed(in *encio.Input) error {
	b, err := decodeBytes(in)
	if err != nil {
		return err
	}
	if err := CheckUTF8(b); err != nil {
		return encio.CollectionDecodeError{Kind: encio.BadItem, Err: err}
	}
	*v = StrRef(unsafe.String(unsafe.SliceData(b), len(b)))
	return nil
}
