package binary

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

// decodeVec reads a u32 element count and invokes elem once per element.
func (d *decoder) decodeVec(elem func(i uint32) error) error {
	n, err := d.decodeU32()
	if err != nil {
		return fmt.Errorf("vector size: %w", err)
	}
	for i := uint32(0); i < n; i++ {
		if err := elem(i); err != nil {
			return err
		}
	}
	return nil
}

// decodeUintN decodes an unsigned LEB128 integer of at most n bits.
//
// Each byte contributes its low seven bits; the high bit marks
// continuation. The trailing byte must fit in the bits remaining of the n
// budget, and a continuation byte once seven or fewer bits remain is an
// overlong encoding of an out-of-range value.
func (d *decoder) decodeUintN(n int) (uint64, error) {
	offset := d.offset
	var result uint64
	remaining, shift := n, 0
	for {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			if remaining < 8 && uint64(b) >= 1<<remaining {
				return 0, fmt.Errorf("%w: u%d at offset %d: more than %d bits encoded by trailing byte",
					wasm.ErrInvalidLEB128, n, offset, n)
			}
			return result, nil
		}
		if remaining <= 7 {
			return 0, fmt.Errorf("%w: u%d at offset %d: more than %d bits encoded by middle byte",
				wasm.ErrInvalidLEB128, n, offset, n)
		}
		shift += 7
		remaining -= 7
	}
}

// decodeIntN decodes a signed LEB128 integer of at most n bits. Bit 6 of
// the trailing byte is the sign: positive values must have the unused
// high bits clear, negative values must have them all set.
func (d *decoder) decodeIntN(n int) (int64, error) {
	offset := d.offset
	var result int64
	remaining, shift := n, 0
	for {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if b&0x80 == 0 {
			if b&0x40 == 0 {
				if remaining < 8 && uint64(b) >= 1<<(remaining-1) {
					return 0, fmt.Errorf("%w: s%d at offset %d: more than %d bits encoded by trailing byte",
						wasm.ErrInvalidLEB128, n, offset, n)
				}
				result |= int64(b&0x3f) << shift
			} else {
				if remaining < 8 && uint64(b) < (1<<7)-(1<<(remaining-1)) {
					return 0, fmt.Errorf("%w: s%d at offset %d: more than %d bits encoded by trailing byte",
						wasm.ErrInvalidLEB128, n, offset, n)
				}
				result |= (int64(b) - 0x80) << shift
			}
			return result, nil
		}
		if remaining <= 7 {
			return 0, fmt.Errorf("%w: s%d at offset %d: more than %d bits encoded by middle byte",
				wasm.ErrInvalidLEB128, n, offset, n)
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		remaining -= 7
	}
}

func (d *decoder) decodeU8() (uint8, error) {
	v, err := d.decodeUintN(8)
	return uint8(v), err
}

func (d *decoder) decodeU16() (uint16, error) {
	v, err := d.decodeUintN(16)
	return uint16(v), err
}

func (d *decoder) decodeU32() (uint32, error) {
	v, err := d.decodeUintN(32)
	return uint32(v), err
}

func (d *decoder) decodeS8() (int8, error) {
	v, err := d.decodeIntN(8)
	return int8(v), err
}

func (d *decoder) decodeS16() (int16, error) {
	v, err := d.decodeIntN(16)
	return int16(v), err
}

// decodeS33 decodes the s33 used by block-type type indices.
func (d *decoder) decodeS33() (int64, error) {
	return d.decodeIntN(33)
}

func (d *decoder) decodeI32() (int32, error) {
	v, err := d.decodeIntN(32)
	return int32(v), err
}

func (d *decoder) decodeI64() (int64, error) {
	return d.decodeIntN(64)
}

// decodeF32 reads four little-endian bytes reinterpreted as IEEE-754.
func (d *decoder) decodeF32() (float32, error) {
	var buf [4]byte
	for i := range buf {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:])), nil
}

// decodeF64 reads eight little-endian bytes reinterpreted as IEEE-754.
func (d *decoder) decodeF64() (float64, error) {
	var buf [8]byte
	for i := range buf {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

// decodeName reads a u32-length-prefixed UTF-8 string.
func (d *decoder) decodeName() (string, error) {
	offset := d.offset
	n, err := d.decodeU32()
	if err != nil {
		return "", fmt.Errorf("name size: %w", err)
	}
	buf := make([]byte, n)
	for i := range buf {
		b, err := d.readByte()
		if err != nil {
			return "", err
		}
		buf[i] = b
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: malformed UTF-8 encoding of name at offset %d", wasm.ErrInvalidByte, offset)
	}
	return string(buf), nil
}
