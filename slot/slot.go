// Package slot provides Slot, a reusable buffer sized to hold the encoding of any value of one type.
//
// A Slot is the usual way to move single values across a datagram socket or pipe:
// Write encodes into the buffer, WriteTo sends the used bytes, ReadOnce or ReadFull receives into
// the buffer and Read decodes from it. The buffer is allocated once, at MaxEncodedSize, so a
// Write can never fail for lack of space.
package slot

import (
	"bytes"
	"errors"
	"io"

	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

// Codec constrains PT to be a pointer to T that can encode, decode and bound its encoding.
type Codec[T any] interface {
	*T
	encode.Decoder
	encode.SizedEncoder
}

// New returns an empty Slot for values of T.
func New[T any, PT Codec[T]]() *Slot[T, PT] {
	var zero T
	return &Slot[T, PT]{
		buff: make([]byte, PT(&zero).MaxEncodedSize()),
	}
}

// Slot holds the encoding of at most one T.
// The used length never exceeds the capacity. A Slot is not safe for concurrent use.
type Slot[T any, PT Codec[T]] struct {
	buff []byte
	len  int
}

// Write encodes v into the slot, replacing its contents.
// On failure the slot is left empty.
func (s *Slot[T, PT]) Write(v T) error {
	out := encio.NewOutput(s.buff)
	if err := PT(&v).Encode(out); err != nil {
		s.len = 0
		return err
	}
	s.len = out.Position()
	return nil
}

// Read decodes a T from the used bytes.
// If the encoding does not use all of them, it returns encio.TrailingBytesError.
func (s *Slot[T, PT]) Read() (T, error) {
	return encode.Unmarshal[T, PT](s.Bytes())
}

// Len returns the number of used bytes.
func (s *Slot[T, PT]) Len() int { return s.len }

// Cap returns the size of the buffer, the maximum encoded size of T.
func (s *Slot[T, PT]) Cap() int { return len(s.buff) }

// Bytes returns the used bytes. It aliases the buffer and is invalidated by the next write.
func (s *Slot[T, PT]) Bytes() []byte { return s.buff[:s.len:s.len] }

// Buffer returns the whole buffer, for receiving into with calls that take a []byte.
// Follow the receive with SetLen.
func (s *Slot[T, PT]) Buffer() []byte { return s.buff }

// SetLen marks the first n bytes of the buffer as used.
// If n is out of range, it returns encio.LengthError and the slot is unchanged.
func (s *Slot[T, PT]) SetLen(n int) error {
	if n < 0 || n > len(s.buff) {
		return encio.LengthError{Remaining: len(s.buff), Count: n}
	}
	s.len = n
	return nil
}

// CopyFrom replaces the used bytes with data.
// If data does not fit, it returns encio.LengthError and the slot is unchanged.
func (s *Slot[T, PT]) CopyFrom(data []byte) error {
	if len(data) > len(s.buff) {
		return encio.LengthError{Remaining: len(s.buff), Count: len(data)}
	}
	s.len = copy(s.buff, data)
	return nil
}

// Equal reports whether the used bytes equal data.
func (s *Slot[T, PT]) Equal(data []byte) bool { return bytes.Equal(s.Bytes(), data) }

// WriteTo writes the used bytes to w.
func (s *Slot[T, PT]) WriteTo(w io.Writer) (int64, error) {
	if err := encio.Write(s.Bytes(), w); err != nil {
		return 0, err
	}
	return int64(s.len), nil
}

// ReadOnce makes a single Read call on r into the buffer and uses whatever it returns.
// It is meant for readers that deliver whole messages per call, such as packet connections.
// A read error is returned as is; the slot then holds the bytes read, if any.
func (s *Slot[T, PT]) ReadOnce(r io.Reader) error {
	n, err := r.Read(s.buff)
	if n < 0 || n > len(s.buff) {
		s.len = 0
		return encio.IOError{Op: encio.OpRead, Want: len(s.buff), Err: encio.ErrBadReader}
	}
	s.len = n
	if n > 0 && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ReadFull reads exactly n bytes from r into the slot.
// If n is larger than the capacity, it returns encio.LengthError without reading.
// On a read failure the slot is left empty and an encio.IOError is returned.
func (s *Slot[T, PT]) ReadFull(r io.Reader, n int) error {
	if n < 0 || n > len(s.buff) {
		return encio.LengthError{Remaining: len(s.buff), Count: n}
	}
	if err := encio.Read(s.buff[:n], r); err != nil {
		s.len = 0
		return err
	}
	s.len = n
	return nil
}
