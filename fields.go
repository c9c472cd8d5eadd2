package oct

import (
	"reflect"
	"sync"

	"github.com/stewi1014/oct/encio"
	"github.com/stewi1014/oct/encode"
)

// StructTag is the struct tag key read by the field functions.
// A field tagged `oct:"-"` is skipped.
const StructTag = "oct"

var (
	encoderType      = reflect.TypeFor[encode.Encoder]()
	decoderType      = reflect.TypeFor[encode.Decoder]()
	sizedEncoderType = reflect.TypeFor[encode.SizedEncoder]()
)

type structField struct {
	name  string
	index int
	ty    reflect.Type
}

type structFields struct {
	ty     reflect.Type
	fields []structField
}

var fieldCache sync.Map // reflect.Type -> *structFields

// fieldsOf returns the encoded fields of the struct type ty, in declaration order.
// Unexported fields and fields tagged `oct:"-"` are left out.
func fieldsOf(ty reflect.Type) *structFields {
	if f, ok := fieldCache.Load(ty); ok {
		return f.(*structFields)
	}

	if ty.Kind() != reflect.Struct {
		panic(encio.Misuse(encio.ErrBadType, "%v is not a struct", ty))
	}

	sf := &structFields{ty: ty}
	for i := 0; i < ty.NumField(); i++ {
		field := ty.Field(i)
		if !field.IsExported() || field.Tag.Get(StructTag) == "-" {
			continue
		}

		sf.fields = append(sf.fields, structField{
			name:  field.Name,
			index: i,
			ty:    field.Type,
		})
	}

	f, _ := fieldCache.LoadOrStore(ty, sf)
	return f.(*structFields)
}

func (sf *structFields) check(iface reflect.Type) {
	for _, f := range sf.fields {
		if !reflect.PointerTo(f.ty).Implements(iface) {
			panic(encio.Misuse(encio.ErrBadType, "field %v.%v of type %v does not implement %v", sf.ty, f.name, f.ty, iface))
		}
	}
}

func (sf *structFields) fieldError(f structField, err error) error {
	return encio.FieldError{
		Type:  sf.ty.Name(),
		Field: f.name,
		Err:   err,
	}
}

// structValue returns the struct v points to, or v itself made addressable.
func structValue(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			panic(encio.Misuse(encio.ErrNilPointer, "cannot use nil %v", rv.Type()))
		}
		return rv.Elem()
	}
	if !rv.IsValid() {
		panic(encio.Misuse(encio.ErrNilPointer, "cannot use nil interface"))
	}

	c := reflect.New(rv.Type()).Elem()
	c.Set(rv)
	return c
}

// EncodeFields encodes the exported fields of the struct v, or the struct v points to,
// in declaration order. The encoding is the concatenation of the field encodings.
// The first failing field is reported as encio.FieldError.
//
// Every encoded field must implement encode.Encoder with a value or pointer receiver;
// EncodeFields panics with encio.ErrBadType otherwise.
func EncodeFields(out *encio.Output, v any) error {
	rv := structValue(v)
	sf := fieldsOf(rv.Type())
	sf.check(encoderType)

	for _, f := range sf.fields {
		enc := rv.Field(f.index).Addr().Interface().(encode.Encoder)
		if err := enc.Encode(out); err != nil {
			return sf.fieldError(f, err)
		}
	}
	return nil
}

// DecodeFields decodes the exported fields of the struct ptr points to, in declaration order.
// The fields are decoded into a copy, and *ptr is only assigned once every field has decoded.
// On failure the position of in is restored and the first failing field is reported as encio.FieldError.
//
// Every decoded field must implement encode.Decoder with a pointer receiver;
// DecodeFields panics with encio.ErrBadType otherwise.
func DecodeFields(in *encio.Input, ptr any) error {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer {
		panic(encio.Misuse(encio.ErrBadType, "%T is not a pointer", ptr))
	}
	if rv.IsNil() {
		panic(encio.Misuse(encio.ErrNilPointer, "cannot decode into nil %T", ptr))
	}

	dst := rv.Elem()
	sf := fieldsOf(dst.Type())
	sf.check(decoderType)

	tmp := reflect.New(dst.Type()).Elem()
	tmp.Set(dst)

	pos := in.Position()
	for _, f := range sf.fields {
		dec := tmp.Field(f.index).Addr().Interface().(encode.Decoder)
		if err := dec.Decode(in); err != nil {
			in.Rewind(pos)
			return sf.fieldError(f, err)
		}
	}

	dst.Set(tmp)
	return nil
}

// MaxFieldsSize returns the sum of the maximum encoded sizes of the fields EncodeFields encodes for v,
// which may be a struct, a pointer to one, or a reflect.Type of either.
// It panics with encio.ErrBadType if a field does not implement encode.SizedEncoder.
func MaxFieldsSize(v any) int {
	ty, ok := v.(reflect.Type)
	if !ok {
		ty = reflect.TypeOf(v)
	}
	if ty != nil && ty.Kind() == reflect.Pointer {
		ty = ty.Elem()
	}
	if ty == nil {
		panic(encio.Misuse(encio.ErrNilPointer, "cannot size nil interface"))
	}

	sf := fieldsOf(ty)
	sf.check(sizedEncoderType)

	var n int
	for _, f := range sf.fields {
		n += reflect.New(f.ty).Interface().(encode.SizedEncoder).MaxEncodedSize()
	}
	return n
}

// MaxSize is MaxFieldsSize for the struct type T.
func MaxSize[T any]() int {
	return MaxFieldsSize(reflect.TypeFor[T]())
}
