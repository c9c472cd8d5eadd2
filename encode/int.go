package encode

import (
	"math"

	"github.com/stewi1014/oct/encio"
)

// U8 is a uint8 codec.
type U8 uint8

// Encode implements Encoder.
func (v U8) Encode(out *encio.Output) error { return out.WriteByte(byte(v)) }

// Decode implements Decoder.
func (v *U8) Decode(in *encio.Input) error {
	b, err := in.ReadByte()
	if err != nil {
		return err
	}
	*v = U8(b)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (U8) MaxEncodedSize() int { return 1 }

// I8 is an int8 codec.
type I8 int8

// Encode implements Encoder.
func (v I8) Encode(out *encio.Output) error { return out.WriteByte(byte(v)) }

// Decode implements Decoder.
func (v *I8) Decode(in *encio.Input) error {
	b, err := in.ReadByte()
	if err != nil {
		return err
	}
	*v = I8(b)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (I8) MaxEncodedSize() int { return 1 }

// U16 is a uint16 codec.
type U16 uint16

// Encode implements Encoder.
func (v U16) Encode(out *encio.Output) error { return out.WriteUint16(uint16(v)) }

// Decode implements Decoder.
func (v *U16) Decode(in *encio.Input) error {
	n, err := in.ReadUint16()
	if err != nil {
		return err
	}
	*v = U16(n)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (U16) MaxEncodedSize() int { return 2 }

// I16 is an int16 codec.
type I16 int16

// Encode implements Encoder.
func (v I16) Encode(out *encio.Output) error { return out.WriteUint16(uint16(v)) }

// Decode implements Decoder.
func (v *I16) Decode(in *encio.Input) error {
	n, err := in.ReadUint16()
	if err != nil {
		return err
	}
	*v = I16(n)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (I16) MaxEncodedSize() int { return 2 }

// U32 is a uint32 codec.
type U32 uint32

// Encode implements Encoder.
func (v U32) Encode(out *encio.Output) error { return out.WriteUint32(uint32(v)) }

// Decode implements Decoder.
func (v *U32) Decode(in *encio.Input) error {
	n, err := in.ReadUint32()
	if err != nil {
		return err
	}
	*v = U32(n)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (U32) MaxEncodedSize() int { return 4 }

// I32 is an int32 codec.
type I32 int32

// Encode implements Encoder.
func (v I32) Encode(out *encio.Output) error { return out.WriteUint32(uint32(v)) }

// Decode implements Decoder.
func (v *I32) Decode(in *encio.Input) error {
	n, err := in.ReadUint32()
	if err != nil {
		return err
	}
	*v = I32(n)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (I32) MaxEncodedSize() int { return 4 }

// U64 is a uint64 codec.
type U64 uint64

// Encode implements Encoder.
func (v U64) Encode(out *encio.Output) error { return out.WriteUint64(uint64(v)) }

// Decode implements Decoder.
func (v *U64) Decode(in *encio.Input) error {
	n, err := in.ReadUint64()
	if err != nil {
		return err
	}
	*v = U64(n)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (U64) MaxEncodedSize() int { return 8 }

// I64 is an int64 codec.
type I64 int64

// Encode implements Encoder.
func (v I64) Encode(out *encio.Output) error { return out.WriteUint64(uint64(v)) }

// Decode implements Decoder.
func (v *I64) Decode(in *encio.Input) error {
	n, err := in.ReadUint64()
	if err != nil {
		return err
	}
	*v = I64(n)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (I64) MaxEncodedSize() int { return 8 }

// U128 is an unsigned 128 bit integer, encoded as 16 little endian bytes.
type U128 struct {
	Lo, Hi uint64
}

// Encode implements Encoder.
func (v U128) Encode(out *encio.Output) error {
	b, err := out.Reserve(16)
	if err != nil {
		return err
	}
	encio.EncodeUint64(b[:8], v.Lo)
	encio.EncodeUint64(b[8:], v.Hi)
	return nil
}

// Decode implements Decoder.
func (v *U128) Decode(in *encio.Input) error {
	b, err := in.Read(16)
	if err != nil {
		return err
	}
	*v = U128{
		Lo: encio.DecodeUint64(b[:8]),
		Hi: encio.DecodeUint64(b[8:]),
	}
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (U128) MaxEncodedSize() int { return 16 }

// I128 is a two's complement signed 128 bit integer, encoded as 16 little endian bytes.
type I128 struct {
	Lo uint64
	Hi int64
}

// I128From returns n sign-extended to 128 bits.
func I128From(n int64) I128 {
	return I128{Lo: uint64(n), Hi: n >> 63}
}

// Encode implements Encoder.
func (v I128) Encode(out *encio.Output) error {
	return U128{Lo: v.Lo, Hi: uint64(v.Hi)}.Encode(out)
}

// Decode implements Decoder.
func (v *I128) Decode(in *encio.Input) error {
	var u U128
	if err := u.Decode(in); err != nil {
		return err
	}
	*v = I128{Lo: u.Lo, Hi: int64(u.Hi)}
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (I128) MaxEncodedSize() int { return 16 }

// F32 is a float32 codec. The IEEE-754 bits are written as a uint32, so NaN payloads survive.
type F32 float32

// Encode implements Encoder.
func (v F32) Encode(out *encio.Output) error { return out.WriteUint32(math.Float32bits(float32(v))) }

// Decode implements Decoder.
func (v *F32) Decode(in *encio.Input) error {
	n, err := in.ReadUint32()
	if err != nil {
		return err
	}
	*v = F32(math.Float32frombits(n))
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (F32) MaxEncodedSize() int { return 4 }

// F64 is a float64 codec.
type F64 float64

// Encode implements Encoder.
func (v F64) Encode(out *encio.Output) error { return out.WriteUint64(math.Float64bits(float64(v))) }

// Decode implements Decoder.
func (v *F64) Decode(in *encio.Input) error {
	n, err := in.ReadUint64()
	if err != nil {
		return err
	}
	*v = F64(math.Float64frombits(n))
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (F64) MaxEncodedSize() int { return 8 }

// Usize is a platform sized unsigned integer.
// It is always encoded as 16 bits, and values above math.MaxUint16 fail with encio.UsizeEncodeError.
// Lengths of collections are encoded as a Usize.
type Usize uint

// Encode implements Encoder.
func (v Usize) Encode(out *encio.Output) error {
	if uint64(v) > math.MaxUint16 {
		return encio.UsizeEncodeError{Value: uint64(v)}
	}
	return out.WriteUint16(uint16(v))
}

// Decode implements Decoder.
func (v *Usize) Decode(in *encio.Input) error {
	n, err := in.ReadUint16()
	if err != nil {
		return err
	}
	*v = Usize(n)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (Usize) MaxEncodedSize() int { return 2 }

// Isize is a platform sized signed integer, encoded as 16 bits.
type Isize int

// Encode implements Encoder.
func (v Isize) Encode(out *encio.Output) error {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return encio.IsizeEncodeError{Value: int64(v)}
	}
	return out.WriteUint16(uint16(v))
}

// Decode implements Decoder.
func (v *Isize) Decode(in *encio.Input) error {
	n, err := in.ReadUint16()
	if err != nil {
		return err
	}
	*v = Isize(int16(n))
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (Isize) MaxEncodedSize() int { return 2 }
