package binary

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

// Name subsection ids, including the additions from the extended name
// section spec (7 and 9).
const (
	subsectionIDModuleName    = uint8(0)
	subsectionIDFunctionNames = uint8(1)
	subsectionIDLocalNames    = uint8(2)
	subsectionIDGlobalNames   = uint8(7)
	subsectionIDDataNames     = uint8(9)
)

// decodeCustomSections consumes zero or more custom sections. Custom
// sections may appear between any two non-custom sections and after the
// last one.
func (d *decoder) decodeCustomSections(m *wasm.Module) error {
	for !d.eof && d.cur == wasm.SectionIDCustom {
		if err := d.decodeCustomSection(m); err != nil {
			return err
		}
	}
	return nil
}

// decodeCustomSection decodes a "name" custom section into the module's
// NameSection, recognizes "sourceMappingURL" best-effort, and skips any
// other custom section in full.
func (d *decoder) decodeCustomSection(m *wasm.Module) error {
	return d.decodeSection(wasm.SectionIDCustom, func(size uint32) error {
		startOffset := d.offset
		endOffset := startOffset + int64(size)

		name, err := d.decodeName()
		if err != nil {
			return fmt.Errorf("custom section name: %w", err)
		}
		switch name {
		case "name":
			return d.decodeNameSection(m, endOffset)
		case "sourceMappingURL":
			url, err := d.decodeName()
			if err != nil {
				return fmt.Errorf("source mapping url: %w", err)
			}
			Logger().Info("source mapping url", zap.String("url", url))
			if d.offset != endOffset {
				Logger().Warn("unexpected bytes after source mapping url",
					zap.Int64("offset", d.offset), zap.Int64("count", endOffset-d.offset))
				return d.skipBytes(endOffset - d.offset)
			}
			return nil
		default:
			return d.skipBytes(int64(size) - (d.offset - startOffset))
		}
	})
}

// decodeNameSection reads name subsections until the custom section's
// declared end offset, so a trailing empty subsection terminates cleanly.
// Unknown subsection ids are warned about and skipped by declared size.
func (d *decoder) decodeNameSection(m *wasm.Module, endOffset int64) error {
	if m.NameSection == nil {
		m.NameSection = &wasm.NameSection{}
	}
	ns := m.NameSection

	for d.offset < endOffset {
		if d.eof {
			return fmt.Errorf("%w at offset %d", wasm.ErrUnexpectedEOF, d.offset)
		}
		idOffset := d.offset
		id := d.cur
		var err error
		switch id {
		case subsectionIDModuleName:
			err = d.decodeNameSubsection(id, func(uint32) error {
				name, err := d.decodeName()
				if err != nil {
					return err
				}
				ns.ModuleName, ns.HasModuleName = name, true
				return nil
			})
		case subsectionIDFunctionNames:
			err = d.decodeNameSubsection(id, func(uint32) error {
				names, err := d.decodeNameMap()
				if err != nil {
					return err
				}
				ns.FunctionNames = names
				return nil
			})
		case subsectionIDLocalNames:
			err = d.decodeNameSubsection(id, func(uint32) error {
				names, err := d.decodeIndirectNameMap()
				if err != nil {
					return err
				}
				ns.LocalNames = names
				return nil
			})
		case subsectionIDGlobalNames:
			err = d.decodeNameSubsection(id, func(uint32) error {
				names, err := d.decodeNameMap()
				if err != nil {
					return err
				}
				ns.GlobalNames = names
				return nil
			})
		case subsectionIDDataNames:
			err = d.decodeNameSubsection(id, func(uint32) error {
				names, err := d.decodeNameMap()
				if err != nil {
					return err
				}
				ns.DataNames = names
				return nil
			})
		default:
			err = d.decodeNameSubsection(id, func(size uint32) error {
				Logger().Warn("unrecognized name subsection, skipping",
					zap.Uint8("id", id), zap.Int64("offset", idOffset), zap.Uint32("size", size))
				return d.skipBytes(int64(size))
			})
		}
		if err != nil {
			return fmt.Errorf("name subsection id=%d: %w", id, err)
		}
	}
	return nil
}

// decodeNameSubsection reads the subsection's id byte and u32 size and
// invokes body with the size.
func (d *decoder) decodeNameSubsection(id uint8, body func(size uint32) error) error {
	if err := d.matchByte(id); err != nil {
		return err
	}
	size, err := d.decodeU32()
	if err != nil {
		return fmt.Errorf("subsection size: %w", err)
	}
	return body(size)
}

// decodeNameMap reads a vec of (index, name) associations.
func (d *decoder) decodeNameMap() (map[wasm.Index]string, error) {
	result := map[wasm.Index]string{}
	err := d.decodeVec(func(uint32) error {
		idx, err := d.decodeU32()
		if err != nil {
			return err
		}
		name, err := d.decodeName()
		if err != nil {
			return err
		}
		result[idx] = name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// decodeIndirectNameMap reads a vec of (outer index, name map)
// associations, as used by the local-names subsection.
func (d *decoder) decodeIndirectNameMap() (map[wasm.Index]map[wasm.Index]string, error) {
	result := map[wasm.Index]map[wasm.Index]string{}
	err := d.decodeVec(func(uint32) error {
		idx, err := d.decodeU32()
		if err != nil {
			return err
		}
		inner, err := d.decodeNameMap()
		if err != nil {
			return err
		}
		result[idx] = inner
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
