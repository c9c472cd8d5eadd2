package encio

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Failures in oct come in three kinds.
//
// Codec errors are comparable values describing why a value could not be encoded or
// decoded, such as OutputError, BoolDecodeError or CollectionDecodeError. They hold only
// the payload needed to diagnose the failure, and nested ones implement Unwrap.
//
// IOError reports a stream that could not deliver or accept the bytes asked of it.
//
// Error is a panic value for misuse of the library. Bad input data never panics.
//
//	var inErr InputError
//	var ioErr IOError
//	switch {
//	case errors.As(err, &inErr):
//		// not enough data
//	case errors.As(err, &ioErr):
//		// the stream is broken
//	}
var (
	// ErrBadType is the cause of panics when a type cannot be used where it was given,
	// e.g. a container element without Encode or Decode methods, or a capacity
	// parameter that is not an array of the element type.
	ErrBadType = errors.New("bad type")

	// ErrNilPointer is the cause of panics when a pointer that must not be nil is nil.
	ErrNilPointer = errors.New("nil pointer")

	// ErrBadReader is the cause of an IOError when an io.Reader reports more bytes than it was given room for.
	ErrBadReader = errors.New("bad io.Reader implementation")

	// ErrBadWriter is the cause of an IOError when an io.Writer reports more bytes than it was given.
	ErrBadWriter = errors.New("bad io.Writer implementation")
)

// IO operations named by IOError.Op.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// IOError is returned when a stream fails part way through moving Want bytes.
type IOError struct {
	Op   string
	Want int
	Got  int
	Err  error
}

func (e IOError) Error() string {
	return fmt.Sprintf("%s %d of %d bytes: %v", e.Op, e.Got, e.Want, e.Err)
}

func (e IOError) Unwrap() error { return e.Err }

// Misuse returns the panic value for misuse of the library, recording the calling function.
// The message is formatted with fmt.Sprintf.
func Misuse(err error, format string, args ...any) Error {
	return Error{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
		Caller:  caller(1),
	}
}

// Error describes a misuse of the library. It is only ever used as a panic value.
type Error struct {
	Err     error
	Message string
	Caller  string
}

func (e Error) Error() string {
	var b strings.Builder
	if e.Caller != "" {
		b.WriteString(e.Caller)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	if e.Message != "" {
		b.WriteString(" (")
		b.WriteString(e.Message)
		b.WriteString(")")
	}
	return b.String()
}

func (e Error) Unwrap() error { return e.Err }

// caller returns the name of the function skip frames above its own caller.
func caller(skip int) string {
	var pc [1]uintptr
	if runtime.Callers(skip+2, pc[:]) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pc[:]).Next()
	return frame.Function
}
