package encode

import (
	"unicode/utf8"

	"github.com/stewi1014/oct/encio"
)

// Bool is a bool codec. It is encoded as a single byte of 0 or 1; any other byte fails to decode.
type Bool bool

// Encode implements Encoder.
func (v Bool) Encode(out *encio.Output) error {
	if v {
		return out.WriteByte(1)
	}
	return out.WriteByte(0)
}

// Decode implements Decoder.
func (v *Bool) Decode(in *encio.Input) error {
	b, err := in.ReadByte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		return encio.BoolDecodeError{Value: b}
	}
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (Bool) MaxEncodedSize() int { return 1 }

// Char is a Unicode scalar value, encoded as its 32 bit code point.
type Char rune

// Encode implements Encoder.
// Runes that are not scalar values fail with encio.CharEncodeError.
func (v Char) Encode(out *encio.Output) error {
	if !utf8.ValidRune(rune(v)) {
		return encio.CharEncodeError{CodePoint: int32(v)}
	}
	return out.WriteUint32(uint32(v))
}

// Decode implements Decoder.
func (v *Char) Decode(in *encio.Input) error {
	n, err := in.ReadUint32()
	if err != nil {
		return err
	}
	if n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return encio.CharDecodeError{CodePoint: n}
	}
	*v = Char(n)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (Char) MaxEncodedSize() int { return 4 }

// Unit is a value with no information. It encodes to nothing.
type Unit struct{}

// Encode implements Encoder.
func (Unit) Encode(*encio.Output) error { return nil }

// Decode implements Decoder.
func (*Unit) Decode(*encio.Input) error { return nil }

// MaxEncodedSize implements SizedEncoder.
func (Unit) MaxEncodedSize() int { return 0 }
