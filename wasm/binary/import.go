package binary

import (
	"fmt"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

// decodeImport reads the module and entity names and the descriptor. The
// descriptor kind is always retained; of the payloads only the function
// type index is kept, the rest are validated and dropped.
func (d *decoder) decodeImport() (wasm.Import, error) {
	imp := wasm.Import{}

	var err error
	if imp.Module, err = d.decodeName(); err != nil {
		return imp, fmt.Errorf("import module: %w", err)
	}
	if imp.Name, err = d.decodeName(); err != nil {
		return imp, fmt.Errorf("import name: %w", err)
	}

	offset := d.offset
	b, err := d.readByte()
	if err != nil {
		return imp, err
	}
	imp.Kind = b
	switch b {
	case wasm.ImportKindFunc:
		if imp.DescFunc, err = d.decodeU32(); err != nil {
			return imp, fmt.Errorf("import func typeidx: %w", err)
		}
	case wasm.ImportKindTable:
		err = d.decodeTableType()
	case wasm.ImportKindMemory:
		err = d.decodeMemType()
	case wasm.ImportKindGlobal:
		err = d.decodeGlobalType()
	case wasm.ImportKindTag:
		err = d.decodeTag()
	default:
		return imp, fmt.Errorf("%w: importdesc 0x%02x at offset %d", wasm.ErrUnknownTag, b, offset)
	}
	if err != nil {
		return imp, fmt.Errorf("import desc: %w", err)
	}
	return imp, nil
}
