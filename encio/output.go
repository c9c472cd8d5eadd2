package encio

// NewOutput returns an Output writing to buff from offset 0.
// The capacity of the Output is len(buff).
func NewOutput(buff []byte) *Output {
	return &Output{buff: buff}
}

// Output is a write cursor over a fixed byte region.
// The position never exceeds the capacity.
type Output struct {
	buff []byte
	off  int
}

// Write copies data to the current position and advances past it.
// If data does not fit in the remaining capacity, nothing is written and an OutputError is returned.
func (o *Output) Write(data []byte) error {
	if len(data) > o.Remaining() {
		return OutputError{
			Capacity: len(o.buff),
			Position: o.off,
			Count:    len(data),
		}
	}

	o.off += copy(o.buff[o.off:], data)
	return nil
}

// WriteByte writes a single byte.
func (o *Output) WriteByte(b byte) error {
	if o.off == len(o.buff) {
		return OutputError{
			Capacity: len(o.buff),
			Position: o.off,
			Count:    1,
		}
	}

	o.buff[o.off] = b
	o.off++
	return nil
}

// Reserve advances the position by n bytes and returns them for the caller to fill.
// It is used by fixed-width codecs to write in place.
func (o *Output) Reserve(n int) ([]byte, error) {
	if n < 0 || n > o.Remaining() {
		return nil, OutputError{
			Capacity: len(o.buff),
			Position: o.off,
			Count:    n,
		}
	}

	b := o.buff[o.off : o.off+n : o.off+n]
	o.off += n
	return b, nil
}

// Position returns the number of bytes written so far.
func (o *Output) Position() int { return o.off }

// Capacity returns the size of the backing region.
func (o *Output) Capacity() int { return len(o.buff) }

// Remaining returns how many more bytes can be written.
func (o *Output) Remaining() int { return len(o.buff) - o.off }

// Bytes returns the written prefix of the backing region.
// It aliases the region; it is invalidated by later writes or a Reset.
func (o *Output) Bytes() []byte { return o.buff[:o.off:o.off] }

// Reset rewinds the cursor to the start of the region.
// Previously written bytes are left in place.
func (o *Output) Reset() { o.off = 0 }
