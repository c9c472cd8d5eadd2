package registry

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"net/netip"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/stewi1014/oct/encode"
	"github.com/stewi1014/oct/fixed"
)

// String32 is a string of at most 32 bytes.
type String32 = fixed.String[[32]byte]

// U16Vec8 is a list of at most 8 u16 values.
type U16Vec8 = fixed.Vec[encode.U16, [8]encode.U16]

// Builtin returns codecs for the built-in types, named as they are written on the command line.
func Builtin() []Codec {
	return []Codec{
		Sized[encode.U8]("u8", parseUint[encode.U8](8), formatUint[encode.U8]),
		Sized[encode.U16]("u16", parseUint[encode.U16](16), formatUint[encode.U16]),
		Sized[encode.U32]("u32", parseUint[encode.U32](32), formatUint[encode.U32]),
		Sized[encode.U64]("u64", parseUint[encode.U64](64), formatUint[encode.U64]),
		Sized[encode.U128]("u128", parseU128, formatU128),
		Sized[encode.I8]("i8", parseInt[encode.I8](8), formatInt[encode.I8]),
		Sized[encode.I16]("i16", parseInt[encode.I16](16), formatInt[encode.I16]),
		Sized[encode.I32]("i32", parseInt[encode.I32](32), formatInt[encode.I32]),
		Sized[encode.I64]("i64", parseInt[encode.I64](64), formatInt[encode.I64]),
		Sized[encode.I128]("i128", parseI128, formatI128),
		Sized[encode.Usize]("usize", parseUint[encode.Usize](64), formatUint[encode.Usize]),
		Sized[encode.Isize]("isize", parseInt[encode.Isize](64), formatInt[encode.Isize]),
		Sized[encode.F32]("f32", parseFloat[encode.F32](32), formatFloat[encode.F32](32)),
		Sized[encode.F64]("f64", parseFloat[encode.F64](64), formatFloat[encode.F64](64)),
		Sized[encode.Bool]("bool", parseBool, formatBool),
		Sized[encode.Char]("char", parseChar, formatChar),
		Sized[encode.Unit]("unit", parseUnit, formatUnit),
		Sized[encode.Duration]("duration", parseDuration, formatDuration),
		Sized[encode.Time]("time", parseTime, formatTime),
		Sized[encode.Addr]("addr", parseAddr, formatAddr),
		Sized[encode.AddrPort]("addrport", parseAddrPort, formatAddrPort),
		Sized[String32]("str<32>", fixed.NewString[[32]byte], formatString32),
		Sized[U16Vec8]("vec<u16,8>", parseU16Vec8, formatU16Vec8),
		Unsized[encode.Str]("str", parseStr, sizeStr, formatStr),
		Unsized[encode.Bytes]("bytes", parseBytes, sizeBytes, formatBytes),
	}
}

// Default returns a Registry holding the Builtin codecs.
func Default() *Registry {
	r := New()
	if err := r.Register(Builtin()...); err != nil {
		panic(err)
	}
	return r
}

func parseUint[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseUint(s, 0, bits)
		return T(n), err
	}
}

func formatUint[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func parseInt[T ~int8 | ~int16 | ~int32 | ~int64 | ~int](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseInt(s, 0, bits)
		return T(n), err
	}
}

func formatInt[T ~int8 | ~int16 | ~int32 | ~int64 | ~int](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func parseFloat[T ~float32 | ~float64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		f, err := strconv.ParseFloat(s, bits)
		return T(f), err
	}
}

func formatFloat[T ~float32 | ~float64](bits int) func(T) string {
	return func(v T) string {
		return strconv.FormatFloat(float64(v), 'g', -1, bits)
	}
}

var (
	two64  = new(big.Int).Lsh(big.NewInt(1), 64)
	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
	min128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	max128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

// split returns the low and high 64 bits of n, which must be in [0, 2^128).
func split(n *big.Int) (lo, hi uint64) {
	var q, r big.Int
	q.DivMod(n, two64, &r)
	return r.Uint64(), q.Uint64()
}

func parseU128(s string) (encode.U128, error) {
	n, err := parseBig(s)
	if err != nil {
		return encode.U128{}, err
	}
	if n.Sign() < 0 || n.Cmp(two128) >= 0 {
		return encode.U128{}, fmt.Errorf("%v out of range for u128", n)
	}
	lo, hi := split(n)
	return encode.U128{Lo: lo, Hi: hi}, nil
}

func formatU128(v encode.U128) string {
	n := new(big.Int).SetUint64(v.Hi)
	n.Lsh(n, 64)
	n.Add(n, new(big.Int).SetUint64(v.Lo))
	return n.String()
}

func parseI128(s string) (encode.I128, error) {
	n, err := parseBig(s)
	if err != nil {
		return encode.I128{}, err
	}
	if n.Cmp(min128) < 0 || n.Cmp(max128) > 0 {
		return encode.I128{}, fmt.Errorf("%v out of range for i128", n)
	}
	if n.Sign() < 0 {
		n.Add(n, two128)
	}
	lo, hi := split(n)
	return encode.I128{Lo: lo, Hi: int64(hi)}, nil
}

func formatI128(v encode.I128) string {
	n := big.NewInt(v.Hi)
	n.Lsh(n, 64)
	n.Add(n, new(big.Int).SetUint64(v.Lo))
	return n.String()
}

func parseBool(s string) (encode.Bool, error) {
	b, err := strconv.ParseBool(s)
	return encode.Bool(b), err
}

func formatBool(v encode.Bool) string { return strconv.FormatBool(bool(v)) }

func parseChar(s string) (encode.Char, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	return encode.Char(r), nil
}

func formatChar(v encode.Char) string { return string(rune(v)) }

func parseUnit(s string) (encode.Unit, error) {
	if s != "" && s != "()" {
		return encode.Unit{}, fmt.Errorf("unit must be empty or (), got %q", s)
	}
	return encode.Unit{}, nil
}

func formatUnit(encode.Unit) string { return "()" }

func parseDuration(s string) (encode.Duration, error) {
	d, err := time.ParseDuration(s)
	return encode.Duration(d), err
}

func formatDuration(v encode.Duration) string { return time.Duration(v).String() }

func parseTime(s string) (encode.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	return encode.Time{Time: t}, err
}

func formatTime(v encode.Time) string { return v.UTC().Format(time.RFC3339) }

func parseAddr(s string) (encode.Addr, error) {
	a, err := netip.ParseAddr(s)
	return encode.Addr{Addr: a}, err
}

func formatAddr(v encode.Addr) string { return v.Addr.String() }

func parseAddrPort(s string) (encode.AddrPort, error) {
	ap, err := netip.ParseAddrPort(s)
	return encode.AddrPort{AddrPort: ap}, err
}

func formatAddrPort(v encode.AddrPort) string { return v.AddrPort.String() }

func formatString32(v String32) string { return v.String() }

func parseU16Vec8(s string) (U16Vec8, error) {
	var items []encode.U16
	if strings.TrimSpace(s) != "" {
		for _, f := range strings.Split(s, ",") {
			n, err := strconv.ParseUint(strings.TrimSpace(f), 0, 16)
			if err != nil {
				return U16Vec8{}, err
			}
			items = append(items, encode.U16(n))
		}
	}
	return fixed.New[encode.U16, [8]encode.U16](items)
}

func formatU16Vec8(v U16Vec8) string {
	items := make([]string, 0, v.Len())
	for _, n := range v.Slice() {
		items = append(items, formatUint(n))
	}
	return strings.Join(items, ",")
}

func parseStr(s string) (encode.Str, error) { return encode.Str(s), nil }
func sizeStr(v encode.Str) int              { return 2 + len(v) }
func formatStr(v encode.Str) string         { return string(v) }

func parseBytes(s string) (encode.Bytes, error) {
	b, err := hex.DecodeString(s)
	return encode.Bytes(b), err
}

func sizeBytes(v encode.Bytes) int      { return 2 + len(v) }
func formatBytes(v encode.Bytes) string { return hex.EncodeToString(v) }
