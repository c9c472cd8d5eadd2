package oct

import (
	"io"
	"sync"

	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encoder writes the encodings of values to an io.Writer, one after another with no framing.
// Each value is encoded into a reused buffer first, so a value that fails to encode writes nothing.
// It is safe for concurrent use; values are written whole.
type Encoder struct {
	w     io.Writer
	mutex sync.Mutex
	buff  []byte
}

// Encode writes the encoding of v.
func (e *Encoder) Encode(v encode.SizedEncoder) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if size := v.MaxEncodedSize(); cap(e.buff) < size {
		e.buff = make([]byte, size)
	}

	out := encio.NewOutput(e.buff[:v.MaxEncodedSize()])
	if err := v.Encode(out); err != nil {
		return err
	}

	return encio.Write(out.Bytes(), e.w)
}

// EncodeAll writes the encodings of values as a single write.
// If any value fails to encode, nothing is written.
func (e *Encoder) EncodeAll(values ...encode.SizedEncoder) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	size := encode.MaxSize(values...)
	if cap(e.buff) < size {
		e.buff = make([]byte, size)
	}

	out := encio.NewOutput(e.buff[:size])
	for _, v := range values {
		if err := v.Encode(out); err != nil {
			return err
		}
	}

	return encio.Write(out.Bytes(), e.w)
}
