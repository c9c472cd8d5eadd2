package encio_test

import (
	"fmt"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/oct/encio"
)

func TestUint16(t *testing.T) {
	testCases := []uint16{0, 1, 255, 256, 1<<15 + 3, 1<<16 - 1}
	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC), func(t *testing.T) {
			out := encio.NewOutput(make([]byte, 2))
			td.CmpNoError(t, out.WriteUint16(tC))
			td.Cmp(t, out.Bytes(), []byte{byte(tC), byte(tC >> 8)})

			n, err := encio.NewInput(out.Bytes()).ReadUint16()
			td.CmpNoError(t, err)
			td.Cmp(t, n, tC)
		})
	}
}

func TestUint32(t *testing.T) {
	testCases := []uint32{
		0, 1, 2, 3, 4,
		246, 247, 248, 249, 250, 251, 252, 253, 254, 255, 256, 257,
		1 << 8, 1 << 16, 1 << 24, 1<<32 - 1,
	}
	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC), func(t *testing.T) {
			out := encio.NewOutput(make([]byte, 4))
			td.CmpNoError(t, out.WriteUint32(tC))
			td.Cmp(t, encio.DecodeUint32(out.Bytes()), tC)

			in := encio.NewInput(out.Bytes())
			n, err := in.ReadUint32()
			td.CmpNoError(t, err)
			td.Cmp(t, n, tC)
			td.Cmp(t, in.Remaining(), 0)
		})
	}
}

func TestUint64(t *testing.T) {
	testCases := []uint64{0, 1, 1 << 32, 1<<32 - 1, 0x0102030405060708, 1<<64 - 1}
	for _, tC := range testCases {
		t.Run(fmt.Sprint(tC), func(t *testing.T) {
			buff := make([]byte, 8)
			encio.EncodeUint64(buff, tC)
			td.Cmp(t, buff[0], byte(tC))
			td.Cmp(t, buff[7], byte(tC>>56))

			n, err := encio.NewInput(buff).ReadUint64()
			td.CmpNoError(t, err)
			td.Cmp(t, n, tC)
		})
	}
}

func TestIntShort(t *testing.T) {
	out := encio.NewOutput(make([]byte, 3))
	td.Cmp(t, out.WriteUint32(1), encio.OutputError{Capacity: 3, Position: 0, Count: 4})

	in := encio.NewInput(make([]byte, 7))
	_, err := in.ReadUint64()
	td.Cmp(t, err, encio.InputError{Capacity: 7, Position: 0, Count: 8})
	td.Cmp(t, in.Position(), 0)
}
