package wiretype

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ShortBufferError reports that a byte slice was too small for the
// primitive or field being encoded/decoded. It is the only error this
// package raises; there are no other failure modes on the codec hot path.
type ShortBufferError struct {
	Needed int
	Got    int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("wiretype: short buffer: need %d bytes, have %d", e.Needed, e.Got)
}

func shortBuffer(needed, got int) error {
	return &ShortBufferError{Needed: needed, Got: got}
}

// EncodeU8 writes a single byte. char is transmitted the same way, as its
// low 8 bits (see EncodeChar).
func EncodeU8(v uint8, out []byte) (int, error) {
	if len(out) < 1 {
		return 0, shortBuffer(1, len(out))
	}
	out[0] = v
	return 1, nil
}

// DecodeU8 mirrors EncodeU8.
func DecodeU8(in []byte) (uint8, int, error) {
	if len(in) < 1 {
		return 0, 0, shortBuffer(1, len(in))
	}
	return in[0], 1, nil
}

// EncodeI8 writes a single signed byte.
func EncodeI8(v int8, out []byte) (int, error) {
	return EncodeU8(uint8(v), out)
}

// DecodeI8 mirrors EncodeI8.
func DecodeI8(in []byte) (int8, int, error) {
	v, n, err := DecodeU8(in)
	return int8(v), n, err
}

// EncodeChar writes a single byte: the low 8 bits of v.
func EncodeChar(v byte, out []byte) (int, error) {
	return EncodeU8(v, out)
}

// DecodeChar mirrors EncodeChar.
func DecodeChar(in []byte) (byte, int, error) {
	return DecodeU8(in)
}

// EncodeU16 writes v little-endian.
func EncodeU16(v uint16, out []byte) (int, error) {
	if len(out) < 2 {
		return 0, shortBuffer(2, len(out))
	}
	binary.LittleEndian.PutUint16(out, v)
	return 2, nil
}

// DecodeU16 mirrors EncodeU16.
func DecodeU16(in []byte) (uint16, int, error) {
	if len(in) < 2 {
		return 0, 0, shortBuffer(2, len(in))
	}
	return binary.LittleEndian.Uint16(in), 2, nil
}

// EncodeI16 writes v little-endian.
func EncodeI16(v int16, out []byte) (int, error) {
	return EncodeU16(uint16(v), out)
}

// DecodeI16 mirrors EncodeI16.
func DecodeI16(in []byte) (int16, int, error) {
	v, n, err := DecodeU16(in)
	return int16(v), n, err
}

// EncodeU32 writes v little-endian.
func EncodeU32(v uint32, out []byte) (int, error) {
	if len(out) < 4 {
		return 0, shortBuffer(4, len(out))
	}
	binary.LittleEndian.PutUint32(out, v)
	return 4, nil
}

// DecodeU32 mirrors EncodeU32.
func DecodeU32(in []byte) (uint32, int, error) {
	if len(in) < 4 {
		return 0, 0, shortBuffer(4, len(in))
	}
	return binary.LittleEndian.Uint32(in), 4, nil
}

// EncodeI32 writes v little-endian.
func EncodeI32(v int32, out []byte) (int, error) {
	return EncodeU32(uint32(v), out)
}

// DecodeI32 mirrors EncodeI32.
func DecodeI32(in []byte) (int32, int, error) {
	v, n, err := DecodeU32(in)
	return int32(v), n, err
}

// EncodeU64 writes v little-endian.
func EncodeU64(v uint64, out []byte) (int, error) {
	if len(out) < 8 {
		return 0, shortBuffer(8, len(out))
	}
	binary.LittleEndian.PutUint64(out, v)
	return 8, nil
}

// DecodeU64 mirrors EncodeU64.
func DecodeU64(in []byte) (uint64, int, error) {
	if len(in) < 8 {
		return 0, 0, shortBuffer(8, len(in))
	}
	return binary.LittleEndian.Uint64(in), 8, nil
}

// EncodeI64 writes v little-endian.
func EncodeI64(v int64, out []byte) (int, error) {
	return EncodeU64(uint64(v), out)
}

// DecodeI64 mirrors EncodeI64.
func DecodeI64(in []byte) (int64, int, error) {
	v, n, err := DecodeU64(in)
	return int64(v), n, err
}

// EncodeF32 writes v little-endian, bit-reinterpreted as uint32.
func EncodeF32(v float32, out []byte) (int, error) {
	return EncodeU32(math.Float32bits(v), out)
}

// DecodeF32 mirrors EncodeF32.
func DecodeF32(in []byte) (float32, int, error) {
	bits, n, err := DecodeU32(in)
	if err != nil {
		return 0, 0, err
	}
	return math.Float32frombits(bits), n, nil
}

// EncodeF64 writes v little-endian, bit-reinterpreted as uint64.
func EncodeF64(v float64, out []byte) (int, error) {
	return EncodeU64(math.Float64bits(v), out)
}

// DecodeF64 mirrors EncodeF64.
func DecodeF64(in []byte) (float64, int, error) {
	bits, n, err := DecodeU64(in)
	if err != nil {
		return 0, 0, err
	}
	return math.Float64frombits(bits), n, nil
}
