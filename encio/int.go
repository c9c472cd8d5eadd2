package encio

// All multi-byte integers on the wire are little endian.

// EncodeUint16 writes a uint16 to buff.
func EncodeUint16(buff []byte, n uint16) {
	_ = buff[1]
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
}

// DecodeUint16 reads a uint16 from buff.
func DecodeUint16(buff []byte) uint16 {
	_ = buff[1]
	return uint16(buff[0]) | uint16(buff[1])<<8
}

// EncodeUint32 writes a uint32 to buff.
func EncodeUint32(buff []byte, n uint32) {
	_ = buff[3]
	buff[0] = uint8(n)
	buff[1] = uint8(n >> 8)
	buff[2] = uint8(n >> 16)
	buff[3] = uint8(n >> 24)
}

// DecodeUint32 reads a uint32 from buff.
func DecodeUint32(buff []byte) uint32 {
	_ = buff[3]
	n := uint32(buff[0])
	n |= uint32(buff[1]) << 8
	n |= uint32(buff[2]) << 16
	n |= uint32(buff[3]) << 24
	return n
}

// EncodeUint64 writes a uint64 to buff.
func EncodeUint64(buff []byte, n uint64) {
	_ = buff[7]
	EncodeUint32(buff[:4], uint32(n))
	EncodeUint32(buff[4:8], uint32(n>>32))
}

// DecodeUint64 reads a uint64 from buff.
func DecodeUint64(buff []byte) uint64 {
	_ = buff[7]
	return uint64(DecodeUint32(buff[:4])) | uint64(DecodeUint32(buff[4:8]))<<32
}

// WriteUint16 writes n at the current position.
func (o *Output) WriteUint16(n uint16) error {
	b, err := o.Reserve(2)
	if err != nil {
		return err
	}
	EncodeUint16(b, n)
	return nil
}

// WriteUint32 writes n at the current position.
func (o *Output) WriteUint32(n uint32) error {
	b, err := o.Reserve(4)
	if err != nil {
		return err
	}
	EncodeUint32(b, n)
	return nil
}

// WriteUint64 writes n at the current position.
func (o *Output) WriteUint64(n uint64) error {
	b, err := o.Reserve(8)
	if err != nil {
		return err
	}
	EncodeUint64(b, n)
	return nil
}

// ReadUint16 reads a uint16.
func (in *Input) ReadUint16() (uint16, error) {
	b, err := in.Read(2)
	if err != nil {
		return 0, err
	}
	return DecodeUint16(b), nil
}

// ReadUint32 reads a uint32.
func (in *Input) ReadUint32() (uint32, error) {
	b, err := in.Read(4)
	if err != nil {
		return 0, err
	}
	return DecodeUint32(b), nil
}

// ReadUint64 reads a uint64.
func (in *Input) ReadUint64() (uint64, error) {
	b, err := in.Read(8)
	if err != nil {
		return 0, err
	}
	return DecodeUint64(b), nil
}
