package encode_test

import (
	"fmt"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

func TestBool(t *testing.T) {
	testCases := []bool{true, false}
	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC), func(t *testing.T) {
			want := []byte{0}
			if tC {
				want[0] = 1
			}
			testRoundTrip(t, encode.Bool(tC), want)
		})
	}
}

func TestBoolInvalid(t *testing.T) {
	for _, b := range []byte{2, 0x80, 0xff} {
		t.Run(fmt.Sprint(b), func(t *testing.T) {
			v := encode.Bool(true)
			err := v.Decode(encio.NewInput([]byte{b}))
			td.Cmp(t, err, encio.BoolDecodeError{Value: b})
			td.Cmp(t, v, encode.Bool(true), "failed decode must not assign")
		})
	}
}

func TestChar(t *testing.T) {
	testCases := []rune{0, 'A', 'é', '€', 0x1f600, 0xd7ff, 0xe000, 0x10ffff}
	for _, tC := range testCases {
		t.Run(fmt.Sprintf("%U", tC), func(t *testing.T) {
			testRoundTrip(t, encode.Char(tC), []byte{byte(tC), byte(tC >> 8), byte(tC >> 16), 0})
		})
	}
}

func TestCharInvalid(t *testing.T) {
	testCases := []uint32{0xd800, 0xdfff, 0x110000, 0xffffffff}
	for _, tC := range testCases {
		t.Run(fmt.Sprintf("%#x", tC), func(t *testing.T) {
			b := make([]byte, 4)
			encio.EncodeUint32(b, tC)

			var v encode.Char
			err := v.Decode(encio.NewInput(b))
			td.Cmp(t, err, encio.CharDecodeError{CodePoint: tC})
		})
	}
}

func TestCharEncodeInvalid(t *testing.T) {
	testCases := []rune{0xd800, 0xdfff, -1, 0x110000}
	for _, tC := range testCases {
		t.Run(fmt.Sprintf("%#x", tC), func(t *testing.T) {
			out := encio.NewOutput(make([]byte, 4))
			err := encode.Char(tC).Encode(out)
			td.Cmp(t, err, encio.CharEncodeError{CodePoint: tC})
			td.Cmp(t, out.Position(), 0, "nothing is written")

			_, err = encode.Marshal(encode.Char(tC))
			td.Cmp(t, err, encio.CharEncodeError{CodePoint: tC})
		})
	}
}

func TestUnit(t *testing.T) {
	testRoundTrip(t, encode.Unit{}, []byte{})

	out := encio.NewOutput(nil)
	td.CmpNoError(t, encode.Unit{}.Encode(out))
	td.Cmp(t, out.Position(), 0)
}
