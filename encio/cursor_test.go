package encio_test

import (
	"errors"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/oct/encio"
)

func TestOutput(t *testing.T) {
	buff := make([]byte, 8)
	out := encio.NewOutput(buff)

	td.Cmp(t, out.Capacity(), 8)
	td.CmpNoError(t, out.Write([]byte{1, 2, 3}))
	td.CmpNoError(t, out.WriteByte(4))
	td.Cmp(t, out.Position(), 4)
	td.Cmp(t, out.Remaining(), 4)
	td.Cmp(t, out.Bytes(), []byte{1, 2, 3, 4})

	err := out.Write([]byte{5, 6, 7, 8, 9})
	td.Cmp(t, err, encio.OutputError{Capacity: 8, Position: 4, Count: 5})
	td.Cmp(t, out.Position(), 4, "failed write must not move the cursor")
	td.Cmp(t, buff, []byte{1, 2, 3, 4, 0, 0, 0, 0}, "failed write must not touch the buffer")

	b, err := out.Reserve(4)
	td.CmpNoError(t, err)
	copy(b, []byte{5, 6, 7, 8})
	td.Cmp(t, out.Remaining(), 0)
	td.Cmp(t, buff, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	td.Cmp(t, out.WriteByte(9), encio.OutputError{Capacity: 8, Position: 8, Count: 1})

	_, err = out.Reserve(1)
	td.Cmp(t, err, encio.OutputError{Capacity: 8, Position: 8, Count: 1})

	out.Reset()
	td.Cmp(t, out.Position(), 0)
	td.Cmp(t, out.Bytes(), []byte{})
}

func TestOutputEmptyWrite(t *testing.T) {
	out := encio.NewOutput(nil)
	td.CmpNoError(t, out.Write(nil))
	td.Cmp(t, out.Position(), 0)
	td.Cmp(t, out.Write([]byte{1}), encio.OutputError{Capacity: 0, Position: 0, Count: 1})
}

func TestInput(t *testing.T) {
	in := encio.NewInput([]byte{1, 2, 3, 4, 5, 6})

	b, err := in.Peek(2)
	td.CmpNoError(t, err)
	td.Cmp(t, b, []byte{1, 2})
	td.Cmp(t, in.Position(), 0)

	b, err = in.Read(2)
	td.CmpNoError(t, err)
	td.Cmp(t, b, []byte{1, 2})
	td.Cmp(t, in.Position(), 2)

	c, err := in.ReadByte()
	td.CmpNoError(t, err)
	td.Cmp(t, c, byte(3))

	into := make([]byte, 2)
	td.CmpNoError(t, in.PeekInto(into))
	td.Cmp(t, into, []byte{4, 5})
	td.Cmp(t, in.Position(), 3)

	td.CmpNoError(t, in.ReadInto(into))
	td.Cmp(t, in.Position(), 5)
	td.Cmp(t, in.Remaining(), 1)
	td.Cmp(t, in.Bytes(), []byte{6})

	_, err = in.Read(2)
	td.Cmp(t, err, encio.InputError{Capacity: 6, Position: 5, Count: 2})
	td.Cmp(t, in.Position(), 5, "failed read must not move the cursor")

	td.Cmp(t, in.ReadInto(make([]byte, 3)), encio.InputError{Capacity: 6, Position: 5, Count: 3})

	in.Rewind(1)
	td.Cmp(t, in.Position(), 1)
	td.CmpPanic(t, func() { in.Rewind(4) }, td.Isa(encio.Error{}))

	b, err = in.Read(in.Remaining())
	td.CmpNoError(t, err)
	td.Cmp(t, b, []byte{2, 3, 4, 5, 6})

	_, err = in.ReadByte()
	td.Cmp(t, err, encio.InputError{Capacity: 6, Position: 6, Count: 1})
}

func TestInputShort(t *testing.T) {
	in := encio.NewInput([]byte{1, 2})

	_, err := in.Peek(-1)
	td.CmpError(t, err)
	td.Cmp(t, in.Short(), false, "a negative count is not a short input")

	_, err = in.Read(2)
	td.CmpNoError(t, err)
	td.Cmp(t, in.Short(), false)

	_, err = in.ReadByte()
	td.CmpError(t, err)
	td.Cmp(t, in.Short(), true)

	in.Rewind(0)
	td.Cmp(t, in.Short(), true, "rewinding keeps the flag")

	for _, fail := range []func(in *encio.Input) error{
		func(in *encio.Input) error { _, err := in.Read(3); return err },
		func(in *encio.Input) error { return in.PeekInto(make([]byte, 3)) },
		func(in *encio.Input) error { return in.ReadInto(make([]byte, 3)) },
	} {
		in := encio.NewInput([]byte{1, 2})
		td.CmpError(t, fail(in))
		td.Cmp(t, in.Short(), true)
	}
}

func TestErrorsComparable(t *testing.T) {
	err := error(encio.CollectionDecodeError{
		Kind: encio.BadItem,
		Err: encio.ItemDecodeError{
			Index: 2,
			Err:   encio.BoolDecodeError{Value: 3},
		},
	})

	td.Cmp(t, err == encio.CollectionDecodeError{
		Kind: encio.BadItem,
		Err:  encio.ItemDecodeError{Index: 2, Err: encio.BoolDecodeError{Value: 3}},
	}, true)

	var boolErr encio.BoolDecodeError
	td.Cmp(t, errors.As(err, &boolErr), true)
	td.Cmp(t, boolErr.Value, byte(3))

	var itemErr encio.ItemDecodeError
	td.Cmp(t, errors.As(err, &itemErr), true)
	td.Cmp(t, itemErr.Index, 2)
}

func TestDiscriminant(t *testing.T) {
	testCases := []struct {
		d   encio.Discriminant
		i   int64
		str string
	}{
		{d: encio.Discriminant{Bits: 7, Width: 1}, i: 7, str: "7u8"},
		{d: encio.Discriminant{Bits: 0xff, Width: 1, Signed: true}, i: -1, str: "-1i8"},
		{d: encio.Discriminant{Bits: 0x8000, Width: 2, Signed: true}, i: -32768, str: "-32768i16"},
		{d: encio.Discriminant{Bits: 0x7fff, Width: 2, Signed: true}, i: 32767, str: "32767i16"},
		{d: encio.Discriminant{Bits: 1 << 40, Width: 8}, i: 1 << 40, str: "1099511627776u64"},
	}
	for _, tC := range testCases {
		t.Run(tC.str, func(t *testing.T) {
			td.Cmp(t, tC.d.Int64(), tC.i)
			td.Cmp(t, tC.d.String(), tC.str)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	td.Cmp(t, encio.OutputError{Capacity: 4, Position: 2, Count: 3}.Error(),
		"cannot write (3) bytes at (2) to output with capacity of (4)")
	td.Cmp(t, encio.InputError{Capacity: 4, Position: 2, Count: 3}.Error(),
		"cannot read (3) bytes at (2) from input with capacity of (4)")
	td.Cmp(t, encio.FieldError{Type: "Point", Field: "X", Err: encio.BoolDecodeError{Value: 2}}.Error(),
		"Point.X: value 0x02 is not boolean")
	td.Cmp(t, encio.EnumDecodeError{
		Kind:  encio.UnassignedDiscriminant,
		Value: encio.Discriminant{Bits: 8, Width: 1},
	}.Error(), "`8u8` is not an assigned discriminant for the given enumeration")
}
