package wasm

import "fmt"

// ValueType describes a value a WebAssembly instruction can produce or
// consume. The tag values are the binary-format discriminators, so a
// decoded byte is usable directly once recognized.
//
// The spec groups these into number types, vector types and reference
// types; a single tagged type suffices because nothing past parse-time
// dispatch distinguishes the groups.
type ValueType = byte

const (
	ValueTypeI32 ValueType = 0x7f
	ValueTypeI64 ValueType = 0x7e
	ValueTypeF32 ValueType = 0x7d
	ValueTypeF64 ValueType = 0x7c

	ValueTypeV128 ValueType = 0x7b

	ValueTypeFuncref   ValueType = 0x70
	ValueTypeExternref ValueType = 0x6f
)

// ValueTypeName returns the canonical text-format keyword for t.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	}
	return fmt.Sprintf("unknown (0x%02x)", t)
}

// FunctionType is a function signature: a parameter list and a result
// list. Both lists may be empty. Immutable once decoded.
type FunctionType struct {
	Params  []ValueType
	Results []ValueType
}
