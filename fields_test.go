package oct_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/oct"
	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
	"github.com/stewi1014/oct/fixed"
)

type header struct {
	Version encode.U8
	Flags   encode.U16
	Name    fixed.String[[8]byte]
	Tags    fixed.Vec[encode.U8, [4]encode.U8]
	Note    string `oct:"-"`
	private int
}

func (h header) Encode(out *encio.Output) error { return oct.EncodeFields(out, &h) }
func (h *header) Decode(in *encio.Input) error  { return oct.DecodeFields(in, h) }
func (header) MaxEncodedSize() int              { return oct.MaxSize[header]() }

func newHeader() header {
	return header{
		Version: 1,
		Flags:   0x0203,
		Name:    fixed.NewStringUnchecked[[8]byte]("ab"),
		Tags:    fixed.NewUnchecked[encode.U8, [4]encode.U8]([]encode.U8{9}),
		Note:    "not encoded",
		private: 7,
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	h := newHeader()
	td.Cmp(t, h.MaxEncodedSize(), 1+2+10+6)
	td.Cmp(t, oct.MaxFieldsSize(&h), 19)
	td.Cmp(t, oct.MaxFieldsSize(reflect.TypeOf(h)), 19)

	b, err := encode.Marshal(h)
	td.CmpNoError(t, err)
	td.Cmp(t, b, []byte{1, 3, 2, 2, 0, 'a', 'b', 1, 0, 9})

	var got header
	got.Note = "kept"
	td.CmpNoError(t, got.Decode(encio.NewInput(b)))
	td.Cmp(t, got.Version, h.Version)
	td.Cmp(t, got.Flags, h.Flags)
	td.Cmp(t, got.Name.String(), "ab")
	td.Cmp(t, got.Tags.Slice(), []encode.U8{9})
	td.Cmp(t, got.Note, "kept", "skipped fields are left alone")
}

func TestFieldsDecodeError(t *testing.T) {
	h := newHeader()
	b, err := encode.Marshal(h)
	td.CmpNoError(t, err)

	got := newHeader()
	got.Version = 5
	in := encio.NewInput(b[:len(b)-1])
	err = got.Decode(in)
	td.Cmp(t, err, encio.FieldError{
		Type:  "header",
		Field: "Tags",
		Err: encio.CollectionDecodeError{
			Kind: encio.BadItem,
			Err: encio.ItemDecodeError{
				Index: 0,
				Err:   encio.InputError{Capacity: 9, Position: 9, Count: 1},
			},
		},
	})
	td.Cmp(t, in.Position(), 0, "position is restored")
	td.Cmp(t, got.Version, encode.U8(5), "failed decode leaves the struct untouched")

	var fieldErr encio.FieldError
	td.Cmp(t, errors.As(err, &fieldErr), true)
	td.Cmp(t, fieldErr.Error(), "header.Tags: "+fieldErr.Err.Error())
}

func TestFieldsEncodeError(t *testing.T) {
	h := newHeader()
	err := oct.EncodeFields(encio.NewOutput(make([]byte, 4)), h)
	td.Cmp(t, err, encio.FieldError{
		Type:  "header",
		Field: "Name",
		Err: encio.CollectionEncodeError{
			Kind: encio.BadLength,
			Err:  encio.OutputError{Capacity: 4, Position: 3, Count: 2},
		},
	})
}

type plain struct {
	A int
}

type unsized struct {
	S encode.Str
}

func TestFieldsMisuse(t *testing.T) {
	out := encio.NewOutput(make([]byte, 8))
	td.CmpPanic(t, func() { oct.EncodeFields(out, plain{}) }, td.Isa(encio.Error{}))
	td.CmpPanic(t, func() { oct.DecodeFields(encio.NewInput(nil), &plain{}) }, td.Isa(encio.Error{}))
	td.CmpPanic(t, func() { oct.DecodeFields(encio.NewInput(nil), header{}) }, td.Isa(encio.Error{}))
	td.CmpPanic(t, func() { oct.DecodeFields(encio.NewInput(nil), (*header)(nil)) }, td.Isa(encio.Error{}))
	td.CmpPanic(t, func() { oct.EncodeFields(out, 5) }, td.Isa(encio.Error{}))
	td.CmpPanic(t, func() { oct.MaxSize[unsized]() }, td.Isa(encio.Error{}))

	// Unsized fields still encode.
	out = encio.NewOutput(make([]byte, 8))
	td.CmpNoError(t, oct.EncodeFields(out, unsized{S: "hi"}))
	td.Cmp(t, out.Bytes(), []byte{2, 0, 'h', 'i'})
}
