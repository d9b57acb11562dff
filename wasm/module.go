// Package wasm holds the decoded representation of a WebAssembly module.
//
// The structure follows the WebAssembly Core Specification 2.0
// (Draft 2023-04-08) plus the threads extension, the exception-handling
// extension and the extended name section:
//
//   - https://webassembly.github.io/spec/core/
//   - https://webassembly.github.io/threads/core/
//   - https://webassembly.github.io/exception-handling/core/
//   - https://www.scheidecker.net/2019-07-08-extended-name-section-spec/appendix/custom.html
package wasm

// Index is a zero-based position into one of the module's index spaces.
// Indices are positional: there is no separate identifier table.
type Index = uint32

// Module is a decoded WebAssembly module.
//
// Only the sections the text writer consumes today are retained; the
// remaining sections are decoded for validation and then dropped. Order
// within each retained section is the encoded order and is observable.
type Module struct {
	// TypeSection holds the function types in the order encoded in the
	// type section.
	TypeSection []FunctionType

	// ImportSection holds the imports in the order encoded in the import
	// section.
	ImportSection []Import

	// NameSection is the decoded "name" custom section, or nil if the
	// module has none.
	NameSection *NameSection
}

// Name returns the module name from the "name" custom section, if any.
func (m *Module) Name() (string, bool) {
	if m.NameSection == nil || !m.NameSection.HasModuleName {
		return "", false
	}
	return m.NameSection.ModuleName, true
}

// NameSection holds the contents of the "name" custom section, including
// the subsections added by the extended name section spec.
type NameSection struct {
	// ModuleName is the contents of the module-name subsection. Valid only
	// if HasModuleName is true: the empty string is a legal module name.
	ModuleName    string
	HasModuleName bool

	// FunctionNames maps function indices to names (subsection 1).
	FunctionNames map[Index]string

	// LocalNames maps function indices to a map of local indices to names
	// (subsection 2).
	LocalNames map[Index]map[Index]string

	// GlobalNames maps global indices to names (subsection 7).
	GlobalNames map[Index]string

	// DataNames maps data segment indices to names (subsection 9).
	DataNames map[Index]string
}

// SectionID identifies a section in the binary format.
type SectionID = byte

const (
	SectionIDCustom    SectionID = 0
	SectionIDType      SectionID = 1
	SectionIDImport    SectionID = 2
	SectionIDFunction  SectionID = 3
	SectionIDTable     SectionID = 4
	SectionIDMemory    SectionID = 5
	SectionIDGlobal    SectionID = 6
	SectionIDExport    SectionID = 7
	SectionIDStart     SectionID = 8
	SectionIDElement   SectionID = 9
	SectionIDCode      SectionID = 10
	SectionIDData      SectionID = 11
	SectionIDDataCount SectionID = 12

	// SectionIDTag is from the exception-handling extension.
	SectionIDTag SectionID = 13
)
