package encode

import (
	"math"
	"slices"

	"github.com/stewi1014/oct/encio"
)

// NewDiscriminants returns the descriptor for an enumeration with the given assigned discriminants.
//
// The wire width is the smallest of 8, 16, 32 and 64 bits that covers every value; it is unsigned
// unless a value is negative. Values are matched exactly, so gaps between them are unassigned.
// It panics if a value is given twice.
func NewDiscriminants(values ...int64) *Discriminants {
	d := &Discriminants{
		values: slices.Clone(values),
		width:  1,
	}
	slices.Sort(d.values)

	for i := 1; i < len(d.values); i++ {
		if d.values[i] == d.values[i-1] {
			panic(encio.Misuse(encio.ErrBadType, "discriminant %v is assigned twice", d.values[i]))
		}
	}

	if len(d.values) == 0 {
		return d
	}

	lo, hi := d.values[0], d.values[len(d.values)-1]
	d.signed = lo < 0
	switch {
	case d.signed && lo >= math.MinInt8 && hi <= math.MaxInt8,
		!d.signed && hi <= math.MaxUint8:
		d.width = 1
	case d.signed && lo >= math.MinInt16 && hi <= math.MaxInt16,
		!d.signed && hi <= math.MaxUint16:
		d.width = 2
	case d.signed && lo >= math.MinInt32 && hi <= math.MaxInt32,
		!d.signed && hi <= math.MaxUint32:
		d.width = 4
	default:
		d.width = 8
	}
	return d
}

// Discriminants describes how the variants of an enumeration are tagged on the wire.
// It is safe for concurrent use.
type Discriminants struct {
	values []int64
	width  int
	signed bool
}

// Width returns the encoded size of a discriminant in bytes.
func (d *Discriminants) Width() int { return d.width }

// Signed reports whether discriminants are encoded as signed integers.
func (d *Discriminants) Signed() bool { return d.signed }

// MaxEncodedSize returns Width; an enumeration without fields encodes to only its discriminant.
func (d *Discriminants) MaxEncodedSize() int { return d.width }

// Contains reports whether v is an assigned discriminant.
func (d *Discriminants) Contains(v int64) bool {
	_, ok := slices.BinarySearch(d.values, v)
	return ok
}

// Values returns the assigned discriminants in ascending order.
func (d *Discriminants) Values() []int64 { return slices.Clone(d.values) }

// Encode writes the discriminant v.
// Values that are not assigned fail with encio.EnumEncodeError of kind BadDiscriminant.
func (d *Discriminants) Encode(out *encio.Output, v int64) error {
	if !d.Contains(v) {
		return encio.EnumEncodeError{Kind: encio.BadDiscriminant}
	}

	b, err := out.Reserve(d.width)
	if err != nil {
		return encio.EnumEncodeError{Kind: encio.BadDiscriminant, Err: err}
	}
	bits := uint64(v)
	for i := range b {
		b[i] = byte(bits >> (8 * i))
	}
	return nil
}

// Decode reads a discriminant.
// A short read fails with encio.EnumDecodeError of kind InvalidDiscriminant,
// and a value that names no variant with kind UnassignedDiscriminant.
func (d *Discriminants) Decode(in *encio.Input) (int64, error) {
	b, err := in.Read(d.width)
	if err != nil {
		return 0, encio.EnumDecodeError{Kind: encio.InvalidDiscriminant, Err: err}
	}

	raw := encio.Discriminant{Width: d.width, Signed: d.signed}
	for i := range b {
		raw.Bits |= uint64(b[i]) << (8 * i)
	}

	v := raw.Int64()
	if !d.Contains(v) {
		return 0, encio.EnumDecodeError{Kind: encio.UnassignedDiscriminant, Value: raw}
	}
	return v, nil
}

// EncodeVariant writes the discriminant v followed by the fields of the variant.
// Field failures are wrapped in encio.EnumEncodeError of kind BadField.
func EncodeVariant(out *encio.Output, d *Discriminants, v int64, fields ...Encoder) error {
	if err := d.Encode(out, v); err != nil {
		return err
	}
	if err := All(out, fields...); err != nil {
		return encio.EnumEncodeError{Kind: encio.BadField, Err: err}
	}
	return nil
}

// DecodeVariantField decodes the fields of a variant after its discriminant has been read.
// Failures are wrapped in encio.EnumDecodeError of kind BadField.
func DecodeVariantField(in *encio.Input, fields ...Decoder) error {
	if err := DecodeAll(in, fields...); err != nil {
		return encio.EnumDecodeError{Kind: encio.BadField, Err: err}
	}
	return nil
}
