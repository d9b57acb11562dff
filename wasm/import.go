package wasm

// ImportKind is the discriminator byte of an import descriptor.
type ImportKind = byte

const (
	ImportKindFunc   ImportKind = 0x00
	ImportKindTable  ImportKind = 0x01
	ImportKindMemory ImportKind = 0x02
	ImportKindGlobal ImportKind = 0x03

	// ImportKindTag is from the exception-handling extension.
	ImportKindTag ImportKind = 0x04
)

// Import is one entry of the import section.
//
// The descriptor kind is always retained. Of the descriptor payloads, only
// the function type index is kept: table, memory, global and tag payloads
// are validated during decoding and then dropped, which is all the text
// writer can consume today.
type Import struct {
	// Module is the name of the module this import comes from.
	Module string
	// Name is the name of the imported entity within Module.
	Name string
	// Kind discriminates the descriptor.
	Kind ImportKind
	// DescFunc is the type index of a function import. Valid only when
	// Kind is ImportKindFunc.
	DescFunc Index
}
