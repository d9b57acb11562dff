package binary

import (
	"fmt"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

func (d *decoder) decodeNumType() (wasm.ValueType, error) {
	offset := d.offset
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
		return b, nil
	}
	return 0, fmt.Errorf("%w: numtype 0x%02x at offset %d", wasm.ErrUnknownTag, b, offset)
}

func (d *decoder) decodeVecType() (wasm.ValueType, error) {
	offset := d.offset
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if b != wasm.ValueTypeV128 {
		return 0, fmt.Errorf("%w: vectype 0x%02x at offset %d", wasm.ErrUnknownTag, b, offset)
	}
	return b, nil
}

func (d *decoder) decodeRefType() (wasm.ValueType, error) {
	offset := d.offset
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		return b, nil
	}
	return 0, fmt.Errorf("%w: reftype 0x%02x at offset %d", wasm.ErrUnknownTag, b, offset)
}

// canDecodeValType peeks at the lookahead without consuming it, for the
// ambiguous block-type context.
func (d *decoder) canDecodeValType() bool {
	if d.eof {
		return false
	}
	switch d.cur {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64,
		wasm.ValueTypeV128, wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		return true
	}
	return false
}

func (d *decoder) decodeValType() (wasm.ValueType, error) {
	if d.eof {
		return 0, fmt.Errorf("%w at offset %d", wasm.ErrUnexpectedEOF, d.offset)
	}
	switch d.cur {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
		return d.decodeNumType()
	case wasm.ValueTypeV128:
		return d.decodeVecType()
	case wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		return d.decodeRefType()
	}
	return 0, fmt.Errorf("%w: valtype 0x%02x at offset %d", wasm.ErrUnknownTag, d.cur, d.offset)
}

func (d *decoder) decodeResultType() ([]wasm.ValueType, error) {
	var result []wasm.ValueType
	err := d.decodeVec(func(uint32) error {
		t, err := d.decodeValType()
		if err != nil {
			return err
		}
		result = append(result, t)
		return nil
	})
	return result, err
}

// decodeFuncType reads the 0x60 tag, then the parameter and result types.
func (d *decoder) decodeFuncType() (wasm.FunctionType, error) {
	if err := d.matchByte(0x60); err != nil {
		return wasm.FunctionType{}, fmt.Errorf("functype tag: %w", err)
	}
	params, err := d.decodeResultType()
	if err != nil {
		return wasm.FunctionType{}, fmt.Errorf("parameter types: %w", err)
	}
	results, err := d.decodeResultType()
	if err != nil {
		return wasm.FunctionType{}, fmt.Errorf("result types: %w", err)
	}
	return wasm.FunctionType{Params: params, Results: results}, nil
}
