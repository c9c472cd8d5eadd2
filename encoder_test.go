package oct_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/oct"
	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

func TestEncoder(t *testing.T) {
	var buff bytes.Buffer
	enc := oct.NewEncoder(&buff)

	td.CmpNoError(t, enc.Encode(encode.U16(1)))
	td.CmpNoError(t, enc.EncodeAll(encode.Bool(true), encode.U8(2)))
	td.CmpNoError(t, enc.Encode(newHeader()))
	td.Cmp(t, buff.Bytes(), []byte{
		1, 0,
		1, 2,
		1, 3, 2, 2, 0, 'a', 'b', 1, 0, 9,
	})

	buff.Reset()
	err := enc.EncodeAll(encode.U8(1), encode.Usize(1<<20))
	td.Cmp(t, err, encio.UsizeEncodeError{Value: 1 << 20})
	td.Cmp(t, buff.Len(), 0, "a failed value writes nothing")
}

func TestEncoderConcurrent(t *testing.T) {
	var buff bytes.Buffer
	enc := oct.NewEncoder(&buff)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := enc.Encode(encode.U64(0x0101010101010101)); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	td.Cmp(t, buff.Bytes(), bytes.Repeat([]byte{1}, 16*8))
}
