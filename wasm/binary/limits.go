package binary

import (
	"fmt"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

// decodeLimits validates a limits encoding, including the shared flags
// 0x02/0x03 from the threads extension. The bounds are not retained.
func (d *decoder) decodeLimits() error {
	offset := d.offset
	b, err := d.readByte()
	if err != nil {
		return err
	}
	switch b {
	case 0x00, 0x02: // {unshared|shared} min-only
		_, err = d.decodeU32()
		return err
	case 0x01, 0x03: // {unshared|shared} min-max
		if _, err = d.decodeU32(); err != nil {
			return err
		}
		_, err = d.decodeU32()
		return err
	}
	return fmt.Errorf("%w: limits flags 0x%02x at offset %d", wasm.ErrUnknownTag, b, offset)
}

func (d *decoder) decodeMemType() error {
	return d.decodeLimits()
}

func (d *decoder) decodeTableType() error {
	if _, err := d.decodeRefType(); err != nil {
		return err
	}
	return d.decodeLimits()
}

func (d *decoder) decodeGlobalType() error {
	if _, err := d.decodeValType(); err != nil {
		return err
	}
	return d.decodeMut()
}

func (d *decoder) decodeMut() error {
	offset := d.offset
	b, err := d.readByte()
	if err != nil {
		return err
	}
	switch b {
	case 0x00, 0x01: // const, var
		return nil
	}
	return fmt.Errorf("%w: mut 0x%02x at offset %d", wasm.ErrUnknownTag, b, offset)
}

// decodeTag is from the exception-handling extension: a zero attribute
// byte followed by the index of the tag's function type.
func (d *decoder) decodeTag() error {
	if err := d.matchByte(0x00); err != nil {
		return fmt.Errorf("tag attribute: %w", err)
	}
	_, err := d.decodeU32() // typeidx
	return err
}
