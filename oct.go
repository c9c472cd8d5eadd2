// Package oct is a binary encoding for values whose size is bounded by their type.
//
// The format is a fixed, versionless byte layout: little endian fixed-width integers,
// 16 bit lengths and platform sized integers, enumerations tagged with the narrowest integer
// covering their discriminants, and composites as the plain concatenation of their fields
// in declaration order. There is no padding, alignment, header or type information.
//
// oct/encio provides the Output and Input byte cursors and the error types.
//
// oct/encode defines the Encoder, Decoder and SizedEncoder contracts and codecs for primitive,
// textual, temporal and network values, sequences, options and enumerations.
//
// oct/fixed provides Vec and String, containers whose capacity is part of their type,
// so that they have a static encoded size.
//
// oct/slot provides Slot, a buffer sized once for the largest encoding of a type.
//
// This package composes structs from their fields with EncodeFields, DecodeFields and
// MaxFieldsSize, and writes values to streams with Encoder.
package oct
