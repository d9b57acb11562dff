package text

import (
	"fmt"
	"strconv"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

// WriteModule emits the module's text form: `(module`, the optional
// module-name identifier, one line per type, one line per import, and the
// closing `)`. No trailing newline is emitted.
func (w *Writer) WriteModule(m *wasm.Module) error {
	w.tokLeftParen()
	w.tokKeyword("module")
	if name, ok := m.Name(); ok {
		if err := w.tokID(name); err != nil {
			return err
		}
	}
	for i := range m.TypeSection {
		if err := w.writeType(wasm.Index(i), m.TypeSection[i]); err != nil {
			return err
		}
	}
	for i := range m.ImportSection {
		w.writeImport(m.ImportSection[i])
	}
	w.tokRightParen()
	return w.Err()
}

// writeType emits `(type (;i;) <functype>)` on a fresh line.
func (w *Writer) writeType(typeidx wasm.Index, ft wasm.FunctionType) error {
	w.lexNL()
	w.tokLeftParen()
	w.tokKeyword("type")
	w.lexBlockComment(strconv.FormatUint(uint64(typeidx), 10))
	if err := w.writeFunctionType(ft); err != nil {
		return err
	}
	w.tokRightParen()
	return nil
}

// writeFunctionType emits `(func (param …)? (result …)?)`, omitting an
// empty param or result group.
func (w *Writer) writeFunctionType(ft wasm.FunctionType) error {
	w.tokLeftParen()
	w.tokKeyword("func")
	if len(ft.Params) > 0 {
		w.tokLeftParen()
		w.tokKeyword("param")
		for _, t := range ft.Params {
			if err := w.writeValueType(t); err != nil {
				return err
			}
		}
		w.tokRightParen()
	}
	if len(ft.Results) > 0 {
		w.tokLeftParen()
		w.tokKeyword("result")
		for _, t := range ft.Results {
			if err := w.writeValueType(t); err != nil {
				return err
			}
		}
		w.tokRightParen()
	}
	w.tokRightParen()
	return nil
}

// writeValueType emits the canonical keyword for t.
func (w *Writer) writeValueType(t wasm.ValueType) error {
	switch t {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64,
		wasm.ValueTypeV128, wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		w.tokKeyword(wasm.ValueTypeName(t))
		return nil
	}
	return fmt.Errorf("unrecognized value type 0x%02x", t)
}

// writeImport emits `(import "module" "name")` on a fresh line. The
// import descriptor is not serialized yet.
func (w *Writer) writeImport(imp wasm.Import) {
	w.lexNL()
	w.tokLeftParen()
	w.tokKeyword("import")
	w.tokName(imp.Module)
	w.tokName(imp.Name)
	w.tokRightParen()
}
