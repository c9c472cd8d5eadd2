package fixed

import (
	"bytes"
	"iter"
	"unicode/utf8"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

// String is a UTF-8 string of at most N bytes, where A is [N]byte.
// The contents are always valid UTF-8. The zero value is an empty string.
type String[A any] struct {
	buf A
	len int
}

// NewString returns a String holding s.
// It returns encio.Utf8Error if s is not valid UTF-8 and encio.LengthError if s does not fit.
func NewString[A any](s string) (String[A], error) {
	return StringFromUTF8[A](unsafe.Slice(unsafe.StringData(s), len(s)))
}

// NewStringUnchecked is NewString for a string the caller knows is valid and fits.
// It panics if s does not fit; validity is not checked.
func NewStringUnchecked[A any](s string) String[A] {
	return StringFromUTF8Unchecked[A](unsafe.Slice(unsafe.StringData(s), len(s)))
}

// StringFromUTF8 returns a String holding a copy of b.
// It returns encio.Utf8Error if b is not valid UTF-8 and encio.LengthError if b does not fit.
func StringFromUTF8[A any](b []byte) (String[A], error) {
	var s String[A]
	if err := encode.CheckUTF8(b); err != nil {
		return s, err
	}
	if len(b) > s.Cap() {
		return s, encio.LengthError{Remaining: s.Cap(), Count: len(b)}
	}
	s.len = copy(s.storage(), b)
	return s, nil
}

// StringFromUTF8Unchecked is StringFromUTF8 without the UTF-8 check.
// It panics if b does not fit.
func StringFromUTF8Unchecked[A any](b []byte) String[A] {
	var s String[A]
	if len(b) > s.Cap() {
		panic(encio.Misuse(encio.ErrBadType, "string does not fit"))
	}
	s.len = copy(s.storage(), b)
	return s
}

// CollectString returns a String of the leading runes of seq that fit.
// Runes are never split; seq is not pulled past the first rune that does not fit.
func CollectString[A any](seq iter.Seq[rune]) String[A] {
	var s String[A]
	for r := range seq {
		if s.Push(r) != nil {
			break
		}
	}
	return s
}

func (s *String[A]) storage() []byte { return elems[byte](&s.buf) }

// Len returns the length in bytes.
func (s *String[A]) Len() int { return s.len }

// Cap returns N.
func (s *String[A]) Cap() int { return capacity[byte, A]() }

// IsEmpty reports whether s is empty.
func (s *String[A]) IsEmpty() bool { return s.len == 0 }

// Bytes returns the contents. It aliases the storage of s and must not be modified.
func (s *String[A]) Bytes() []byte { return s.storage()[:s.len:s.len] }

// String returns a copy of the contents.
func (s *String[A]) String() string { return string(s.Bytes()) }

// Push appends r. Runes that are not valid scalar values are appended as utf8.RuneError.
// If r does not fit, it returns encio.LengthError and s is unchanged.
func (s *String[A]) Push(r rune) error {
	n := utf8.RuneLen(r)
	if n < 0 {
		r, n = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
	}

	b := s.storage()
	if s.len+n > len(b) {
		return encio.LengthError{Remaining: len(b) - s.len, Count: n}
	}
	s.len += utf8.EncodeRune(b[s.len:], r)
	return nil
}

// PushStr appends str.
// It returns encio.Utf8Error if str is not valid UTF-8 and encio.LengthError if it does not fit;
// either way s is unchanged.
func (s *String[A]) PushStr(str string) error {
	in := unsafe.Slice(unsafe.StringData(str), len(str))
	if err := encode.CheckUTF8(in); err != nil {
		return err
	}

	b := s.storage()
	if s.len+len(in) > len(b) {
		return encio.LengthError{Remaining: len(b) - s.len, Count: len(in)}
	}
	s.len += copy(b[s.len:], in)
	return nil
}

// Pop removes and returns the last rune.
func (s *String[A]) Pop() (rune, bool) {
	if s.len == 0 {
		return 0, false
	}

	b := s.storage()
	r, n := utf8.DecodeLastRune(b[:s.len])
	clear(b[s.len-n : s.len])
	s.len -= n
	return r, true
}

// Truncate shortens s to n bytes. It does nothing if n is not less than the length.
// If n would split a code point, it returns encio.CharBoundaryError and s is unchanged.
func (s *String[A]) Truncate(n int) error {
	if n >= s.len {
		return nil
	}
	if !s.IsCharBoundary(n) {
		return encio.CharBoundaryError{Index: n}
	}

	clear(s.storage()[n:s.len])
	s.len = n
	return nil
}

// IsCharBoundary reports whether i is the start of a code point or the end of s.
func (s *String[A]) IsCharBoundary(i int) bool {
	return isCharBoundary(s.Bytes(), i)
}

// IsCharBoundary reports whether i is the start of a code point of str or its end.
func IsCharBoundary(str string, i int) bool {
	return isCharBoundary(unsafe.Slice(unsafe.StringData(str), len(str)), i)
}

func isCharBoundary(b []byte, i int) bool {
	switch {
	case i == 0 || i == len(b):
		return true
	case i < 0 || i > len(b):
		return false
	default:
		return utf8.RuneStart(b[i])
	}
}

// Hash returns the xxhash of the contents.
// Strings with equal contents have equal hashes whatever their capacity.
func (s *String[A]) Hash() uint64 { return xxhash.Sum64(s.Bytes()) }

// Equal reports whether s and o have the same contents.
func (s *String[A]) Equal(o *String[A]) bool { return bytes.Equal(s.Bytes(), o.Bytes()) }

// EqualString reports whether s holds str.
func (s *String[A]) EqualString(str string) bool { return string(s.Bytes()) == str }

// Compare compares s and o bytewise.
func (s *String[A]) Compare(o *String[A]) int { return bytes.Compare(s.Bytes(), o.Bytes()) }

// Encode writes the length as encode.Usize followed by the bytes.
func (s *String[A]) Encode(out *encio.Output) error {
	if err := encode.EncodeLen(out, s.len); err != nil {
		return err
	}
	if err := out.Write(s.Bytes()); err != nil {
		return encio.CollectionEncodeError{Kind: encio.BadItem, Err: err}
	}
	return nil
}

// Decode replaces the contents of s with a decoded string.
// A length above the capacity fails with encio.CollectionDecodeError of kind BadLength,
// and invalid UTF-8 with kind BadItem. s is only modified on success.
func (s *String[A]) Decode(in *encio.Input) error {
	n, err := encode.DecodeLen(in, s.Cap())
	if err != nil {
		return err
	}

	b, err := in.Read(n)
	if err != nil {
		return encio.CollectionDecodeError{
			Kind: encio.BadLength,
			Err:  encio.LengthError{Remaining: in.Remaining(), Count: n},
		}
	}
	if err := encode.CheckUTF8(b); err != nil {
		return encio.CollectionDecodeError{Kind: encio.BadItem, Err: err}
	}

	buf := s.storage()
	if n < s.len {
		clear(buf[n:s.len])
	}
	s.len = copy(buf, b)
	return nil
}

// MaxEncodedSize returns the bound of a full string: the length prefix and N bytes.
func (s *String[A]) MaxEncodedSize() int {
	return encode.Usize(0).MaxEncodedSize() + s.Cap()
}
