// Package registry maps type names to codecs that convert between a text form and the binary encoding.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/stewi1014/oct/encode"
)

var (
	// ErrAlreadyRegistered is returned by Register if a codec of the same name exists.
	// It is wrapped.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotRegistered is returned by Lookup for unknown names.
	// It is wrapped.
	ErrNotRegistered = errors.New("not registered")
)

// Codec converts values of one type between text and their encoding.
type Codec struct {
	Name string

	// MaxSize is the maximum encoded size, or -1 if the type is unsized.
	MaxSize int

	Encode func(text string) ([]byte, error)
	Decode func(data []byte) (string, error)
}

// Sized returns a Codec for a type with a static size bound.
// parse and format convert between the text form and a T.
func Sized[T any, PT interface {
	*T
	encode.SizedEncoder
	encode.Decoder
}](name string, parse func(string) (T, error), format func(T) string) Codec {
	return Codec{
		Name:    name,
		MaxSize: PT(new(T)).MaxEncodedSize(),
		Encode: func(text string) ([]byte, error) {
			v, err := parse(text)
			if err != nil {
				return nil, err
			}
			return encode.Marshal(PT(&v))
		},
		Decode: func(data []byte) (string, error) {
			v, err := encode.Unmarshal[T, PT](data)
			if err != nil {
				return "", err
			}
			return format(v), nil
		},
	}
}

// Unsized returns a Codec for a type without a size bound.
// size returns the encoded size of a parsed value.
func Unsized[T any, PT interface {
	*T
	encode.Encoder
	encode.Decoder
}](name string, parse func(string) (T, error), size func(T) int, format func(T) string) Codec {
	return Codec{
		Name:    name,
		MaxSize: -1,
		Encode: func(text string) ([]byte, error) {
			v, err := parse(text)
			if err != nil {
				return nil, err
			}
			return encode.MarshalSize(PT(&v), size(v))
		},
		Decode: func(data []byte) (string, error) {
			v, err := encode.Unmarshal[T, PT](data)
			if err != nil {
				return "", err
			}
			return format(v), nil
		},
	}
}

// Registry holds codecs by name. It is safe for concurrent use.
type Registry struct {
	mutex  sync.RWMutex
	codecs map[string]Codec
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// Register adds codecs to the registry.
// Codecs whose names are taken are skipped and reported together in one error.
func (r *Registry) Register(codecs ...Codec) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var errMsg string
	for _, c := range codecs {
		if _, ok := r.codecs[c.Name]; ok {
			if len(errMsg) > 0 {
				errMsg += ", "
			}
			errMsg += c.Name
			continue
		}
		r.codecs[c.Name] = c
	}

	if errMsg != "" {
		return fmt.Errorf("%w: %v", ErrAlreadyRegistered, errMsg)
	}
	return nil
}

// Lookup returns the codec registered as name.
func (r *Registry) Lookup(name string) (Codec, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	c, ok := r.codecs[name]
	if !ok {
		return Codec{}, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return c, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return slices.Sorted(maps.Keys(r.codecs))
}
