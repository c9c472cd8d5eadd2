package oct_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
	"time"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/oct"
	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

func TestDecoder(t *testing.T) {
	var buff bytes.Buffer
	enc := oct.NewEncoder(&buff)
	td.CmpNoError(t, enc.Encode(encode.U16(1)))
	td.CmpNoError(t, enc.Encode(newHeader()))
	td.CmpNoError(t, enc.EncodeAll(encode.Bool(true), encode.Unit{}, encode.U8(2)))

	dec := oct.NewDecoder(iotest.OneByteReader(&buff))

	var u16 encode.U16
	td.CmpNoError(t, dec.Decode(&u16))
	td.Cmp(t, u16, encode.U16(1))

	var h header
	td.CmpNoError(t, dec.Decode(&h))
	td.Cmp(t, h.Name.String(), "ab")
	td.Cmp(t, h.Tags.Slice(), []encode.U8{9})

	var (
		b    encode.Bool
		unit encode.Unit
		u8   encode.U8
	)
	td.CmpNoError(t, dec.Decode(&b))
	td.CmpNoError(t, dec.Decode(&unit))
	td.CmpNoError(t, dec.Decode(&u8))
	td.Cmp(t, b, encode.Bool(true))
	td.Cmp(t, u8, encode.U8(2))

	td.Cmp(t, dec.Decode(&u8), io.EOF)
	td.Cmp(t, dec.Buffered(), 0)
}

func TestDecoderReadAhead(t *testing.T) {
	// The header bound is 19 bytes, so decoding it reads the following values too.
	b, err := encode.Marshal(newHeader())
	td.Require(t).CmpNoError(err)
	b = append(b, 7, 0, 0, 0)

	dec := oct.NewDecoder(bytes.NewReader(b))

	var h header
	td.CmpNoError(t, dec.Decode(&h))
	td.Cmp(t, dec.Buffered(), 4)

	var u32 encode.U32
	td.CmpNoError(t, dec.Decode(&u32))
	td.Cmp(t, u32, encode.U32(7))
	td.Cmp(t, dec.Decode(&u32), io.EOF)
}

func TestDecoderFailureConsumesNothing(t *testing.T) {
	dec := oct.NewDecoder(bytes.NewReader([]byte{2, 1}))

	var b encode.Bool
	td.Cmp(t, dec.Decode(&b), encio.BoolDecodeError{Value: 2})

	var u16 encode.U16
	td.CmpNoError(t, dec.Decode(&u16))
	td.Cmp(t, u16, encode.U16(0x0102))
}

func TestDecoderTruncated(t *testing.T) {
	dec := oct.NewDecoder(bytes.NewReader([]byte{1}))

	var u16 encode.U16
	td.Cmp(t, dec.Decode(&u16), encio.InputError{Capacity: 1, Position: 0, Count: 2})
	td.Cmp(t, dec.Buffered(), 1)
}

func TestDecoderReaderError(t *testing.T) {
	errBroken := errors.New("broken")
	dec := oct.NewDecoder(iotest.ErrReader(errBroken))

	var u16 encode.U16
	err := dec.Decode(&u16)
	td.Cmp(t, err, td.Isa(encio.IOError{}))
	td.Cmp(t, errors.Is(err, errBroken), true)
}

type flagged struct {
	On encode.Bool
	N  encode.U64
}

func (f flagged) Encode(out *encio.Output) error { return oct.EncodeFields(out, &f) }
func (f *flagged) Decode(in *encio.Input) error  { return oct.DecodeFields(in, f) }
func (flagged) MaxEncodedSize() int              { return oct.MaxSize[flagged]() }

func TestDecoderInvalidDataOnOpenStream(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	go pw.Write([]byte{2})

	done := make(chan error, 1)
	go func() {
		var f flagged
		done <- oct.NewDecoder(pr).Decode(&f)
	}()

	select {
	case err := <-done:
		td.Cmp(t, err, encio.FieldError{
			Type:  "flagged",
			Field: "On",
			Err:   encio.BoolDecodeError{Value: 2},
		})
	case <-time.After(5 * time.Second):
		t.Fatal("Decode waited for more input after invalid data")
	}
}

func TestDecoderWaitsForShortInput(t *testing.T) {
	pr, pw := io.Pipe()
	go func() {
		pw.Write([]byte{1})
		pw.Write([]byte{7, 0, 0, 0, 0, 0, 0, 0})
		pw.Close()
	}()

	dec := oct.NewDecoder(pr)

	var f flagged
	td.CmpNoError(t, dec.Decode(&f))
	td.Cmp(t, f, flagged{On: true, N: 7})
	td.Cmp(t, dec.Decode(&f), io.EOF)
}
