// Package encio provides the byte cursors that every codec in oct reads from and writes to,
// the error types those codecs return, and helpers for moving encoded bytes through io.Reader and io.Writer.
//
// Output and Input never allocate and never grow. A write or read that does not fit fails with
// OutputError or InputError and leaves both the cursor and the backing bytes untouched.
// A cursor has exclusive use of its buffer while an operation sequence runs;
// encoding into and decoding from the same buffer at the same time is undefined.
package encio

import (
	"errors"
	"io"
)

// Read fills buff from r, calling Read as many times as it takes.
// Any error reported alongside the final bytes is ignored.
// A reader that ends early fails with io.ErrUnexpectedEOF, and one that returns
// neither data nor an error fails with io.ErrNoProgress; both are wrapped in IOError
// recording how much of buff was filled.
func Read(buff []byte, r io.Reader) error {
	got := 0
	for got < len(buff) {
		n, err := r.Read(buff[got:])
		if n < 0 || n > len(buff)-got {
			return IOError{Op: OpRead, Want: len(buff), Got: got, Err: ErrBadReader}
		}
		got += n

		switch {
		case got == len(buff):
		case errors.Is(err, io.EOF):
			return IOError{Op: OpRead, Want: len(buff), Got: got, Err: io.ErrUnexpectedEOF}
		case err != nil:
			return IOError{Op: OpRead, Want: len(buff), Got: got, Err: err}
		case n == 0:
			return IOError{Op: OpRead, Want: len(buff), Got: got, Err: io.ErrNoProgress}
		}
	}
	return nil
}

// Write writes all of buff to w. Writers that accept part of buff without an error are
// called again with the remainder; one that accepts nothing fails with io.ErrShortWrite.
// An error returned with the final bytes is passed through unwrapped.
func Write(buff []byte, w io.Writer) error {
	done := 0
	for {
		n, err := w.Write(buff[done:])
		if n < 0 || n > len(buff)-done {
			return IOError{Op: OpWrite, Want: len(buff), Got: done, Err: ErrBadWriter}
		}
		done += n

		switch {
		case done == len(buff):
			return err
		case err != nil:
			return IOError{Op: OpWrite, Want: len(buff), Got: done, Err: err}
		case n == 0:
			return IOError{Op: OpWrite, Want: len(buff), Got: done, Err: io.ErrShortWrite}
		}
	}
}
