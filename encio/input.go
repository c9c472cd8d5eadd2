package encio

// NewInput returns an Input reading buff from offset 0.
func NewInput(buff []byte) *Input {
	return &Input{buff: buff}
}

// Input is a read cursor over a fixed byte region.
// The position never exceeds the capacity.
type Input struct {
	buff  []byte
	off   int
	short bool
}

// Read returns the next count bytes and advances past them.
// The returned slice aliases the input region; callers that keep it must not modify it.
// If fewer than count bytes remain, the position is unchanged and an InputError is returned.
func (in *Input) Read(count int) ([]byte, error) {
	b, err := in.Peek(count)
	if err != nil {
		return nil, err
	}

	in.off += count
	return b, nil
}

// ReadInto fills buff from the input and advances past the copied bytes.
func (in *Input) ReadInto(buff []byte) error {
	if err := in.PeekInto(buff); err != nil {
		return err
	}

	in.off += len(buff)
	return nil
}

// ReadByte reads a single byte.
func (in *Input) ReadByte() (byte, error) {
	if in.off == len(in.buff) {
		in.short = true
		return 0, InputError{
			Capacity: len(in.buff),
			Position: in.off,
			Count:    1,
		}
	}

	b := in.buff[in.off]
	in.off++
	return b, nil
}

// Peek is Read without advancing.
func (in *Input) Peek(count int) ([]byte, error) {
	if count < 0 || count > in.Remaining() {
		in.short = in.short || count > in.Remaining()
		return nil, InputError{
			Capacity: len(in.buff),
			Position: in.off,
			Count:    count,
		}
	}

	return in.buff[in.off : in.off+count : in.off+count], nil
}

// PeekInto is ReadInto without advancing.
func (in *Input) PeekInto(buff []byte) error {
	if len(buff) > in.Remaining() {
		in.short = true
		return InputError{
			Capacity: len(in.buff),
			Position: in.off,
			Count:    len(buff),
		}
	}

	copy(buff, in.buff[in.off:])
	return nil
}

// Rewind moves the position back to pos, which must be a position this Input has already passed.
// It is used to undo a failed decode.
func (in *Input) Rewind(pos int) {
	if pos < 0 || pos > in.off {
		panic(Misuse(ErrBadType, "rewind target is not behind the current position"))
	}
	in.off = pos
}

// Short reports whether a read or peek has failed because too few bytes remained.
// It stays set across Rewind, so after a failed decode it tells a truncated input apart
// from invalid data.
func (in *Input) Short() bool { return in.short }

// Position returns the number of bytes consumed so far.
func (in *Input) Position() int { return in.off }

// Capacity returns the size of the backing region.
func (in *Input) Capacity() int { return len(in.buff) }

// Remaining returns the number of unread bytes.
func (in *Input) Remaining() int { return len(in.buff) - in.off }

// Bytes returns the unread remainder of the region.
func (in *Input) Bytes() []byte { return in.buff[in.off:] }
