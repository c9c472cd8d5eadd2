package encode

import (
	"github.com/stewi1014/oct/encio"
)

// EncodeSlice writes the length of s followed by each element.
func EncodeSlice[T Encoder](out *encio.Output, s []T) error {
	if err := EncodeLen(out, len(s)); err != nil {
		return err
	}
	if err := EncodeArray(out, s); err != nil {
		return encio.CollectionEncodeError{Kind: encio.BadItem, Err: err}
	}
	return nil
}

// DecodeSlice reads a slice written by EncodeSlice.
// A length of zero decodes to a nil slice.
func DecodeSlice[T any, PT DecoderPtr[T]](in *encio.Input) ([]T, error) {
	n, err := DecodeLen(in, -1)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	s := make([]T, n)
	if err := DecodeArray[T, PT](in, s); err != nil {
		return nil, encio.CollectionDecodeError{Kind: encio.BadItem, Err: err}
	}
	return s, nil
}

// MaxSliceSize returns the bound of a slice of at most n elements of T.
func MaxSliceSize[T SizedEncoder](n int) int {
	return Usize(0).MaxEncodedSize() + n*SizeOf[T]()
}

// EncodeArray writes each element of a with no framing.
// Failures are reported as encio.ItemEncodeError.
func EncodeArray[T Encoder](out *encio.Output, a []T) error {
	for i := range a {
		if err := a[i].Encode(out); err != nil {
			return encio.ItemEncodeError{Index: i, Err: err}
		}
	}
	return nil
}

// DecodeArray fills dst with len(dst) decoded elements.
// dst is only written if every element decodes. Failures are reported as encio.ItemDecodeError.
func DecodeArray[T any, PT DecoderPtr[T]](in *encio.Input, dst []T) error {
	if len(dst) == 0 {
		return nil
	}

	tmp := make([]T, len(dst))
	for i := range tmp {
		if err := PT(&tmp[i]).Decode(in); err != nil {
			return encio.ItemDecodeError{Index: i, Err: err}
		}
	}
	copy(dst, tmp)
	return nil
}

// EncodeOption writes a Bool for whether v is present, followed by *v if it is.
func EncodeOption[T Encoder](out *encio.Output, v *T) error {
	if v == nil {
		return Bool(false).Encode(out)
	}
	if err := Bool(true).Encode(out); err != nil {
		return err
	}
	return (*v).Encode(out)
}

// DecodeOption reads a value written by EncodeOption. An absent value is returned as nil.
func DecodeOption[T any, PT DecoderPtr[T]](in *encio.Input) (*T, error) {
	var some Bool
	if err := some.Decode(in); err != nil {
		return nil, err
	}
	if !some {
		return nil, nil
	}

	v := new(T)
	if err := PT(v).Decode(in); err != nil {
		return nil, err
	}
	return v, nil
}

// MaxOptionSize returns the bound of an optional T.
func MaxOptionSize[T SizedEncoder]() int {
	return Bool(false).MaxEncodedSize() + SizeOf[T]()
}
