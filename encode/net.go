package encode

import (
	"net/netip"

	"github.com/stewi1014/oct/encio"
)

// Discriminants of the IP address enumerations.
const (
	AddrV4 = 4
	AddrV6 = 6
)

var addrTag = NewDiscriminants(AddrV4, AddrV6)

// Addr is an IP address codec.
// It is encoded as a U8 discriminant of AddrV4 or AddrV6 followed by the numeric value of the address
// as a little endian 32 or 128 bit integer. Zones are not encoded.
// The zero Addr cannot be encoded.
type Addr struct {
	netip.Addr
}

// Encode implements Encoder.
func (v Addr) Encode(out *encio.Output) error {
	switch {
	case v.Is4():
		a := v.As4()
		return encodeAddr(out, AddrV4, a[:])
	case v.Is6():
		a := v.As16()
		return encodeAddr(out, AddrV6, a[:])
	default:
		return encio.EnumEncodeError{Kind: encio.BadDiscriminant}
	}
}

func encodeAddr(out *encio.Output, tag int64, octets []byte) error {
	if err := EncodeVariant(out, addrTag, tag); err != nil {
		return err
	}
	b, err := out.Reserve(len(octets))
	if err != nil {
		return encio.EnumEncodeError{Kind: encio.BadField, Err: err}
	}
	for i := range octets {
		b[len(b)-1-i] = octets[i]
	}
	return nil
}

// Decode implements Decoder.
func (v *Addr) Decode(in *encio.Input) error {
	tag, err := addrTag.Decode(in)
	if err != nil {
		return err
	}

	var b []byte
	switch tag {
	case AddrV4:
		b, err = in.Read(4)
	case AddrV6:
		b, err = in.Read(16)
	}
	if err != nil {
		return encio.EnumDecodeError{Kind: encio.BadField, Err: err}
	}

	var a [16]byte
	for i := range b {
		a[len(b)-1-i] = b[i]
	}
	if tag == AddrV4 {
		v.Addr = netip.AddrFrom4([4]byte(a[:4]))
	} else {
		v.Addr = netip.AddrFrom16(a)
	}
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (Addr) MaxEncodedSize() int { return addrTag.MaxEncodedSize() + 16 }

// AddrPort is a socket address codec.
// It is encoded as Addr followed by the U16 port. IPv6 socket addresses are followed by the
// U32 flow information and the U32 scope identifier.
type AddrPort struct {
	netip.AddrPort
	FlowInfo uint32
	ScopeID  uint32
}

// Encode implements Encoder.
func (v AddrPort) Encode(out *encio.Output) error {
	addr := Addr{Addr: v.Addr()}
	if err := addr.Encode(out); err != nil {
		return err
	}

	if err := U16(v.Port()).Encode(out); err != nil {
		return encio.EnumEncodeError{Kind: encio.BadField, Err: err}
	}
	if addr.Is6() {
		if err := All(out, U32(v.FlowInfo), U32(v.ScopeID)); err != nil {
			return encio.EnumEncodeError{Kind: encio.BadField, Err: err}
		}
	}
	return nil
}

// Decode implements Decoder.
func (v *AddrPort) Decode(in *encio.Input) error {
	var (
		addr            Addr
		port            U16
		flowInfo, scope U32
	)
	if err := addr.Decode(in); err != nil {
		return err
	}

	decs := []Decoder{&port}
	if addr.Is6() {
		decs = append(decs, &flowInfo, &scope)
	}
	if err := DecodeAll(in, decs...); err != nil {
		return encio.EnumDecodeError{Kind: encio.BadField, Err: err}
	}

	*v = AddrPort{
		AddrPort: netip.AddrPortFrom(addr.Addr, uint16(port)),
		FlowInfo: uint32(flowInfo),
		ScopeID:  uint32(scope),
	}
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (AddrPort) MaxEncodedSize() int { return Addr{}.MaxEncodedSize() + 2 + 4 + 4 }
