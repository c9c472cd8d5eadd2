package oct

import (
	"errors"
	"io"
	"sync"

	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

// SizedDecoder is implemented by pointers to types with a static size bound that can be decoded.
type SizedDecoder interface {
	encode.Decoder
	MaxEncodedSize() int
}

// maxEmptyReads is the number of consecutive reads returning no data and no error
// after which a Decoder gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decoder reads values written by Encoder from an io.Reader.
// It reads ahead by at most the maximum encoded size of the value being decoded,
// and keeps bytes read past the end of a value for the next call.
// It is safe for concurrent use.
type Decoder struct {
	r     io.Reader
	mutex sync.Mutex
	buff  []byte
	off   int
	err   error
}

// Decode decodes the next value into v.
//
// More bytes are read only while the value runs short of input, so invalid data is reported
// as soon as it arrives.
// If the stream ends cleanly before the value it returns io.EOF.
// If the value fails to decode, nothing is consumed and the decode error is returned.
// Reader failures other than io.EOF are returned as encio.IOError.
func (d *Decoder) Decode(v SizedDecoder) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	size := v.MaxEncodedSize()
	d.reserve(size)

	for empty := 0; ; {
		buffered := d.buff[d.off:]
		in := encio.NewInput(buffered)
		err := v.Decode(in)
		if err == nil {
			d.off += in.Position()
			return nil
		}

		if !in.Short() || len(buffered) >= size {
			return err
		}

		if d.err != nil {
			switch {
			case len(buffered) == 0 && errors.Is(d.err, io.EOF):
				return io.EOF
			case errors.Is(d.err, io.EOF):
				return err
			default:
				return encio.IOError{Op: encio.OpRead, Want: size, Got: len(buffered), Err: d.err}
			}
		}

		if d.read(size) {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			d.err = io.ErrNoProgress
		}
	}
}

// Buffered returns the number of bytes read from the reader but not yet decoded.
func (d *Decoder) Buffered() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return len(d.buff) - d.off
}

// reserve moves buffered bytes to the front of the buffer and makes room for size bytes.
func (d *Decoder) reserve(size int) {
	if d.off > 0 {
		n := copy(d.buff, d.buff[d.off:])
		d.buff = d.buff[:n]
		d.off = 0
	}

	if cap(d.buff) < size {
		grown := make([]byte, len(d.buff), size)
		copy(grown, d.buff)
		d.buff = grown
	}
}

// read makes a single read of at most size-len(d.buff) bytes, reporting if any data arrived.
func (d *Decoder) read(size int) bool {
	l := len(d.buff)
	n, err := d.r.Read(d.buff[l:size])
	if n < 0 || n > size-l {
		d.err = encio.ErrBadReader
		return false
	}

	d.buff = d.buff[:l+n]
	if err != nil {
		d.err = err
	}
	return n > 0
}
